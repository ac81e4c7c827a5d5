package constants

import "time"

const (
	AppName            = "dayboard"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/dayboard"
	DefaultConfigFile  = DefaultConfigDir + "/config.toml"
	DefaultStoragePath = DefaultConfigDir + "/dayboard.db"
	Version            = "v0.1.0"

	// DateFormat is the day key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MaxBackfillDays bounds how many missed days the day transition generates
	// habit instances for after a long absence.
	MaxBackfillDays = 366

	// Reminder defaults
	DefaultReminderHour     = 21
	DefaultReminderCooldown = 30 * time.Minute
	DefaultReminderPoll     = 60 * time.Second

	// Persistence
	DefaultWriteQueueSize = 256
	ConnectionEnvVar      = "DAYBOARD_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dayboard-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "dayboard-notifier.lock"
	NotificationDurationMs = 8000
	TrayAppIdentifier      = "com.julianstephens.dayboard"
	TrayExecutablePrefix   = "dayboard-tray"
)
