package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing SQLite or JSON store before initializing."`
	Source string `help:"Storage path or connection string to copy existing records from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Initialized dayboard storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Fprintf(ctx.Out, "Copying records from: %s\n", c.Source)
		n, err := copyRecords(c.Source, ctx.Store)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Fprintf(ctx.Out, "%s Copied %d record(s)\n", cli.SuccessStyle.Render("✓"), n)
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if storage.Detect(ctx.Target) == storage.BackendPostgres {
		return errors.New("--force is not supported for PostgreSQL; drop the schema manually")
	}
	path := ctx.Store.GetConfigPath()
	if c.Source != "" && samePath(c.Source, path) {
		return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing storage: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing storage: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Deleted existing storage at: %s\n", path)
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// copyRecords loads every record from the source target and saves it into dst.
func copyRecords(source string, dst storage.Provider) (int, error) {
	src, err := storage.Open(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	snap, err := src.LoadAll()
	if err != nil {
		return 0, err
	}

	// Habits first so instance rows never point at a missing habit.
	for _, h := range snap.Habits {
		if err := dst.SaveHabit(h); err != nil {
			return 0, fmt.Errorf("failed to copy habit %s: %w", h.ID, err)
		}
	}
	for _, t := range snap.Tasks {
		if err := dst.SaveTask(t); err != nil {
			return 0, fmt.Errorf("failed to copy task %s: %w", t.ID, err)
		}
	}
	if err := dst.SaveSettings(snap.Settings); err != nil {
		return 0, fmt.Errorf("failed to copy settings: %w", err)
	}
	return len(snap.Habits) + len(snap.Tasks), nil
}
