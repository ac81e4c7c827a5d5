package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
)

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday, 6=Saturday). Duplicates are dropped.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	var weekdays []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		wd, ok := dayMap[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return weekdays, nil
}

// ParseFrequency turns the --days flag into a frequency: empty means daily.
func ParseFrequency(days string) (models.Frequency, error) {
	if strings.TrimSpace(days) == "" || strings.EqualFold(strings.TrimSpace(days), "daily") {
		return models.Daily(), nil
	}
	weekdays, err := ParseWeekdays(days)
	if err != nil {
		return models.Frequency{}, err
	}
	return models.OnWeekdays(weekdays...), nil
}

// FormatFrequency renders a frequency for display.
func FormatFrequency(f models.Frequency) string {
	if f.Type != models.FrequencyCustom {
		return "daily"
	}
	days := make([]string, 0, len(f.Days))
	for _, wd := range f.Days {
		days = append(days, wd.String()[:3])
	}
	return "on " + strings.Join(days, ",")
}

// ParseDate accepts "today", "tomorrow", "yesterday", "+N" or YYYY-MM-DD.
// Empty input returns empty so callers can apply their own default.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	switch input {
	case "":
		return "", nil
	case "today":
		return utils.Today(now), nil
	case "tomorrow":
		return utils.Tomorrow(now), nil
	case "yesterday":
		return utils.Yesterday(now), nil
	}
	if strings.HasPrefix(input, "+") {
		n, err := strconv.Atoi(input[1:])
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid day offset: %s", input)
		}
		return utils.AddDays(utils.Today(now), n)
	}
	if !utils.IsDayKey(input) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today, tomorrow or +N)", input)
	}
	return input, nil
}

// ShortID trims a UUID to its first block for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
