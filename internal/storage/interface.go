package storage

import "github.com/julianstephens/dayboard/internal/models"

// Provider persists tasks, habits and settings. The engine never reads from a
// Provider after LoadAll; every later call is a write.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	LoadAll() (models.Snapshot, error)

	SaveTask(models.Task) error
	DeleteTask(id string) error

	SaveHabit(models.Habit) error
	DeleteHabit(id string) error

	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}

// SchemaReporter is implemented by the SQL backends.
type SchemaReporter interface {
	SchemaStatus() (current, latest int, err error)
}
