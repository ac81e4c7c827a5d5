package constants

const (
	SettingLastProcessedDate   = "last_processed_date"
	SettingReminderDismissedAt = "reminder_dismissed_at"
)
