// Package config loads the TOML settings file, creating it with defaults
// on first use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/julianstephens/dayboard/internal/constants"
	"github.com/julianstephens/dayboard/internal/utils"
)

type Reminder struct {
	Hour            int `toml:"hour"`
	CooldownMinutes int `toml:"cooldown_minutes"`
	PollSeconds     int `toml:"poll_seconds"`
}

// Keymap holds the TUI key bindings.
type Keymap struct {
	Quit     string `toml:"quit"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	NextTab  string `toml:"next_tab"`
	PrevTab  string `toml:"prev_tab"`
	Complete string `toml:"complete"`
	Clear    string `toml:"clear"`
	Discard  string `toml:"discard"`
	Restore  string `toml:"restore"`
	Delete   string `toml:"delete"`
	Search   string `toml:"search"`
	Dismiss  string `toml:"dismiss"`
	Help     string `toml:"help"`
}

type Config struct {
	// Storage is a SQLite path, a .json path or a postgres:// URL.
	// Empty falls back to the env var, then the keyring, then the default path.
	Storage  string   `toml:"storage"`
	Timezone string   `toml:"timezone"`
	Debug    bool     `toml:"debug"`
	Reminder Reminder `toml:"reminder"`
	Keys     Keymap   `toml:"keys"`
}

func Default() Config {
	return Config{
		Storage:  constants.DefaultStoragePath,
		Timezone: "Local",
		Reminder: Reminder{
			Hour:            constants.DefaultReminderHour,
			CooldownMinutes: int(constants.DefaultReminderCooldown / time.Minute),
			PollSeconds:     int(constants.DefaultReminderPoll / time.Second),
		},
		Keys: Keymap{
			Quit:     "q",
			Up:       "k",
			Down:     "j",
			NextTab:  "tab",
			PrevTab:  "shift+tab",
			Complete: "enter",
			Clear:    "c",
			Discard:  "x",
			Restore:  "r",
			Delete:   "d",
			Search:   "/",
			Dismiss:  "esc",
			Help:     "?",
		},
	}
}

// LoadOrCreate reads the config at path. A missing file is written with
// defaults. Keys absent from an existing file keep their default values.
func LoadOrCreate(path string) (Config, error) {
	path = utils.ExpandHome(path)
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (c Config) Validate() error {
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return fmt.Errorf("reminder.hour must be between 0 and 23, got %d", c.Reminder.Hour)
	}
	if c.Reminder.CooldownMinutes < 0 {
		return fmt.Errorf("reminder.cooldown_minutes must not be negative")
	}
	if c.Reminder.PollSeconds < 0 {
		return fmt.Errorf("reminder.poll_seconds must not be negative")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	return nil
}

func (c Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

func (c Config) ReminderCooldown() time.Duration {
	return time.Duration(c.Reminder.CooldownMinutes) * time.Minute
}

// ReminderPoll returns the poll interval, falling back to the default for zero.
func (c Config) ReminderPoll() time.Duration {
	if c.Reminder.PollSeconds == 0 {
		return constants.DefaultReminderPoll
	}
	return time.Duration(c.Reminder.PollSeconds) * time.Second
}

// Dir returns the directory holding the config file; logs and backups live
// beside it.
func Dir(configPath string) string {
	return filepath.Dir(utils.ExpandHome(configPath))
}
