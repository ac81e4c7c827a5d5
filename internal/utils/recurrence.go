package utils

import (
	"time"

	"github.com/julianstephens/dayboard/internal/models"
)

// AppearsOnDate reports whether the habit generates an instance on date.
// Daily habits appear every day; custom habits appear on their listed weekdays,
// so a custom habit with no days never appears.
func AppearsOnDate(habit models.Habit, date time.Time) bool {
	switch habit.Frequency.Type {
	case models.FrequencyDaily:
		return true
	case models.FrequencyCustom:
		wd := date.Weekday()
		for _, d := range habit.Frequency.Days {
			if d == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AppearsOnDay is AppearsOnDate for a day key. Malformed keys never match.
func AppearsOnDay(habit models.Habit, day string) bool {
	date, err := ParseDay(day, time.UTC)
	if err != nil {
		return false
	}
	return AppearsOnDate(habit, date)
}
