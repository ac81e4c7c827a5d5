package models

import "time"

// Settings is the single settings record persisted next to tasks and habits.
type Settings struct {
	LastProcessedDate   string     `json:"last_processed_date,omitempty"` // YYYY-MM-DD format
	ReminderDismissedAt *time.Time `json:"reminder_dismissed_at,omitempty"`
}
