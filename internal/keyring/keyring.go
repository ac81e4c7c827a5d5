// Package keyring keeps the PostgreSQL connection string in the OS keyring
// so it never has to be written to the config file.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/dayboard/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source tells where a resolved storage target came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceConfig  Source = "config"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

type Vault struct {
	service string
	user    string
}

func New() *Vault {
	return &Vault{service: constants.AppName, user: constants.DefaultKeyringUser}
}

func (v *Vault) Get() (string, error) {
	connStr, err := keyring.Get(v.service, v.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func (v *Vault) Set(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(v.service, v.user, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (v *Vault) Delete() error {
	if err := keyring.Delete(v.service, v.user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Available probes the keyring with a read; a not-found answer still means
// the backend works.
func (v *Vault) Available() bool {
	_, err := keyring.Get(v.service, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Resolve picks the storage target: the explicit flag, then the config
// value, then the connection env var, then the keyring, then fallback.
func (v *Vault) Resolve(flag, configured, fallback string) (string, Source) {
	if flag != "" {
		return flag, SourceFlag
	}
	if configured != "" && configured != fallback {
		return configured, SourceConfig
	}
	if env := strings.TrimSpace(os.Getenv(constants.ConnectionEnvVar)); env != "" {
		return env, SourceEnv
	}
	if connStr, err := v.Get(); err == nil && connStr != "" {
		return connStr, SourceKeyring
	}
	if configured != "" {
		return configured, SourceConfig
	}
	return fallback, SourceDefault
}
