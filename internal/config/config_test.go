package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.Reminder.Hour != 21 {
		t.Errorf("expected default hour 21, got %d", cfg.Reminder.Hour)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("second LoadOrCreate failed: %v", err)
	}
	if again.Storage != cfg.Storage || again.Keys != cfg.Keys {
		t.Errorf("round trip mismatch: %+v vs %+v", again, cfg)
	}
}

func TestLoadOrCreatePartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "storage = \"/tmp/board.json\"\n\n[reminder]\nhour = 20\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.Storage != "/tmp/board.json" {
		t.Errorf("storage = %q", cfg.Storage)
	}
	if cfg.Reminder.Hour != 20 {
		t.Errorf("hour = %d", cfg.Reminder.Hour)
	}
	if cfg.ReminderCooldown() != 30*time.Minute {
		t.Errorf("cooldown = %v", cfg.ReminderCooldown())
	}
	if cfg.Keys.Quit != "q" {
		t.Errorf("expected default quit key, got %q", cfg.Keys.Quit)
	}
}

func TestLoadOrCreateRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"hour out of range", "[reminder]\nhour = 24\n"},
		{"negative cooldown", "[reminder]\ncooldown_minutes = -5\n"},
		{"unknown timezone", "timezone = \"Mars/Olympus\"\n"},
		{"malformed toml", "storage = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadOrCreate(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReminderPollDefault(t *testing.T) {
	cfg := Default()
	cfg.Reminder.PollSeconds = 0
	if cfg.ReminderPoll() != time.Minute {
		t.Errorf("expected 1m fallback, got %v", cfg.ReminderPoll())
	}
	cfg.Reminder.PollSeconds = 5
	if cfg.ReminderPoll() != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.ReminderPoll())
	}
}

func TestLocation(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "UTC"
	loc, err := cfg.Location()
	if err != nil {
		t.Fatal(err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC, got %v", loc)
	}
}
