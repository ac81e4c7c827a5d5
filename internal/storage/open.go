package storage

import (
	"strings"

	"github.com/julianstephens/dayboard/internal/storage/jsonfile"
	"github.com/julianstephens/dayboard/internal/storage/postgres"
	"github.com/julianstephens/dayboard/internal/storage/sqlite"
	"github.com/julianstephens/dayboard/internal/utils"
)

// Backend names the storage implementation a target resolves to.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSON     Backend = "json"
)

// Detect picks the backend for target: a postgres:// URL, a ".json" file, or
// (by default) a SQLite database file.
func Detect(target string) Backend {
	switch {
	case postgres.IsConnString(target):
		return BackendPostgres
	case strings.HasSuffix(strings.ToLower(target), ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// Open builds (but does not Init or Load) the provider for target.
// PostgreSQL connection strings must not embed a password.
func Open(target string) (Provider, error) {
	switch Detect(target) {
	case BackendPostgres:
		if _, err := postgres.ValidateConnString(target); err != nil {
			return nil, err
		}
		return postgres.New(target), nil
	case BackendJSON:
		return jsonfile.New(utils.ExpandHome(target)), nil
	default:
		return sqlite.NewStore(utils.ExpandHome(target)), nil
	}
}
