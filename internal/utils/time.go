package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayboard/internal/constants"
)

// DayKey formats t as a calendar-day key (YYYY-MM-DD) in t's own location.
// Callers pass local times so the key never drifts across midnight in non-UTC zones.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the day key of now.
func Today(now time.Time) string {
	return DayKey(now)
}

// Yesterday returns the day key of the calendar day before now.
func Yesterday(now time.Time) string {
	return DayKey(now.AddDate(0, 0, -1))
}

// Tomorrow returns the day key of the calendar day after now.
func Tomorrow(now time.Time) string {
	return DayKey(now.AddDate(0, 0, 1))
}

// IsDayKey reports whether s is a well-formed YYYY-MM-DD key.
func IsDayKey(s string) bool {
	t, err := time.Parse(constants.DateFormat, s)
	return err == nil && t.Format(constants.DateFormat) == s
}

// ParseDay parses a day key at midnight in loc.
func ParseDay(key string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// AddDays shifts a day key by n calendar days.
func AddDays(key string, n int) (string, error) {
	// UTC has no DST transitions, so AddDate is exact calendar arithmetic here.
	t, err := ParseDay(key, time.UTC)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of calendar days from one key to another.
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDay(from, time.UTC)
	if err != nil {
		return 0, err
	}
	b, err := ParseDay(to, time.UTC)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}

// DayRange returns every day key from 'from' through 'to' inclusive.
// The result is empty when from is after to.
func DayRange(from, to string) ([]string, error) {
	n, err := DaysBetween(from, to)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	days := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		day, err := AddDays(from, i)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
