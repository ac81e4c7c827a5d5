// Package clitest builds command contexts backed by a temporary JSON store.
package clitest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/constants"
)

// Now is the fixed clock used by command tests: Tuesday 2026-03-10 10:00 UTC.
var Now = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

type Env struct {
	Dir     string
	Storage string
	Clock   time.Time
	Out     *bytes.Buffer
}

// New prepares a config directory and an initialized JSON store.
func New(t *testing.T) *Env {
	t.Helper()
	t.Setenv(constants.ConnectionEnvVar, "")
	dir := t.TempDir()
	env := &Env{
		Dir:     dir,
		Storage: filepath.Join(dir, "board.json"),
		Clock:   Now,
		Out:     &bytes.Buffer{},
	}

	ctx := env.Context(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return env
}

// Context opens a fresh context over the same files, the way a new process
// would. It is closed at test cleanup.
func (e *Env) Context(t *testing.T) *cli.Context {
	t.Helper()
	ctx, err := cli.NewContext(cli.Options{
		ConfigPath: filepath.Join(e.Dir, "config.toml"),
		Storage:    e.Storage,
		Timezone:   "UTC",
		Clock:      func() time.Time { return e.Clock },
	})
	if err != nil {
		t.Fatalf("failed to build context: %v", err)
	}
	ctx.Out = e.Out
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}
