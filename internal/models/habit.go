package models

import "time"

type FrequencyType string

const (
	FrequencyDaily  FrequencyType = "daily"
	FrequencyCustom FrequencyType = "custom"
)

type Frequency struct {
	Type FrequencyType  `json:"type"`
	Days []time.Weekday `json:"days,omitempty"` // only for FrequencyCustom
}

// Habit is a recurring template that generates one task per qualifying day.
type Habit struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Frequency         Frequency `json:"frequency"`
	Streak            int       `json:"streak"`
	LastCompletedDate string    `json:"last_completed_date,omitempty"` // YYYY-MM-DD format
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HabitSpec carries the user-supplied fields for creating or editing a habit.
type HabitSpec struct {
	Title       string
	Description string
	Frequency   Frequency
}

func Daily() Frequency {
	return Frequency{Type: FrequencyDaily}
}

func OnWeekdays(days ...time.Weekday) Frequency {
	return Frequency{Type: FrequencyCustom, Days: days}
}
