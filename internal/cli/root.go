package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/dayboard/internal/backup"
	"github.com/julianstephens/dayboard/internal/config"
	"github.com/julianstephens/dayboard/internal/constants"
	"github.com/julianstephens/dayboard/internal/engine"
	"github.com/julianstephens/dayboard/internal/keyring"
	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/reminder"
	"github.com/julianstephens/dayboard/internal/storage"
)

// Options are the global flags that shape a Context.
type Options struct {
	ConfigPath string
	Storage    string
	Timezone   string
	Debug      bool
	Quiet      bool
	// Clock overrides time.Now.
	Clock func() time.Time
}

type Context struct {
	Config     config.Config
	ConfigPath string
	Target     string
	Source     keyring.Source
	Location   *time.Location
	Vault      *keyring.Vault
	Store      storage.Provider
	Engine     *engine.Engine
	Out        io.Writer

	writer *storage.AsyncWriter
	clock  func() time.Time
	opened bool
}

// NewContext loads the config file, starts logging and resolves the storage
// target. It does not touch the store; commands call Open for that.
func NewContext(opts Options) (*Context, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = constants.DefaultConfigFile
	}
	cfg, err := config.LoadOrCreate(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Timezone != "" {
		cfg.Timezone = opts.Timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	if err := logger.Init(logger.Config{
		Debug:     opts.Debug || cfg.Debug,
		ConfigDir: config.Dir(opts.ConfigPath),
		Quiet:     opts.Quiet,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	vault := keyring.New()
	target, source := vault.Resolve(opts.Storage, cfg.Storage, constants.DefaultStoragePath)
	store, err := storage.Open(target)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved storage", "backend", storage.Detect(target), "source", source)

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Context{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Target:     target,
		Source:     source,
		Location:   loc,
		Vault:      vault,
		Store:      store,
		Out:        os.Stdout,
		clock:      clock,
	}, nil
}

// Open loads the store, builds the engine from its snapshot and runs the
// startup day transition.
func (c *Context) Open() error {
	if c.opened {
		return nil
	}
	if err := c.Store.Load(); err != nil {
		return err
	}
	snap, err := c.Store.LoadAll()
	if err != nil {
		return err
	}

	c.writer = storage.NewAsyncWriter(c.Store, constants.DefaultWriteQueueSize)
	c.Engine = engine.New(c.writer, engine.WithClock(c.clock), engine.WithLocation(c.Location))
	c.Engine.Load(snap)
	c.opened = true

	tr := c.Engine.Initialize()
	if tr.StreaksReset > 0 || tr.InstancesCreated > 0 {
		logger.Debug("Startup transition", "day", tr.Day, "streaks_reset", tr.StreaksReset, "instances", tr.InstancesCreated)
	}
	return nil
}

// Flush blocks until every queued write has reached the store and reports
// whether any of them failed.
func (c *Context) Flush() error {
	if c.writer == nil {
		return nil
	}
	before := c.writer.Failures()
	c.writer.Flush()
	if failed := c.writer.Failures() - before; failed > 0 {
		return fmt.Errorf("%d write(s) failed; see the log for details", failed)
	}
	return nil
}

// Close drains pending writes and closes the store. Safe to call twice.
func (c *Context) Close() error {
	var errs []error
	if c.writer != nil {
		if err := c.Flush(); err != nil {
			errs = append(errs, err)
		}
		c.writer.Close()
		c.writer = nil
	}
	c.opened = false
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Now returns the context clock in the configured timezone.
func (c *Context) Now() time.Time {
	return c.clock().In(c.Location)
}

// Backups returns a manager for SQLite stores; other backends have none.
func (c *Context) Backups() (*backup.Manager, bool) {
	if storage.Detect(c.Target) != storage.BackendSQLite {
		return nil, false
	}
	return backup.NewManager(c.Store.GetConfigPath()).WithClock(c.Now), true
}

// PerformAutomaticBackup takes the day's first backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.Backups()
	if !ok {
		return
	}
	path, err := mgr.CreateDaily()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	if path != "" {
		logger.Debug("Automatic backup created", "path", path)
	}
}

// NewReminder builds a trigger seeded with the persisted dismissal and
// wired to persist new ones through the engine.
func (c *Context) NewReminder() *reminder.Trigger {
	cfg := reminder.Config{
		Hour:     c.Config.Reminder.Hour,
		Cooldown: c.Config.ReminderCooldown(),
		Now:      c.Engine.Now,
		OnDismiss: func(at time.Time) {
			c.Engine.RecordReminderDismissal(&at)
		},
	}
	return reminder.New(cfg, c.Engine.Settings().ReminderDismissedAt)
}

// ResolveTask finds a task by ID or unique ID prefix.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	task, ok := c.Engine.FindTask(ref)
	if !ok {
		return models.Task{}, fmt.Errorf("no task matches %q", ref)
	}
	return task, nil
}

// ResolveHabit finds a habit by ID, unique ID prefix or title.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	habit, ok := c.Engine.FindHabit(ref)
	if !ok {
		return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
	}
	return habit, nil
}
