package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesLogFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, Quiet: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("engine tick", "day", "2026-03-10")

	data, err := os.ReadFile(filepath.Join(configDir, "logs", "dayboard.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "engine tick") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestInitNormalModeFiltersDebug(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Debug("hidden message")
	Warn("visible message")

	data, err := os.ReadFile(filepath.Join(configDir, "logs", "dayboard.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden message") {
		t.Error("debug message should be filtered in normal mode")
	}
	if !strings.Contains(string(data), "visible message") {
		t.Error("warning message should be written")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// must not panic
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
