package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EncodeWeekdays renders days as a JSON integer array (Sunday = 0), the
// column format both SQL backends use.
func EncodeWeekdays(days []time.Weekday) (string, error) {
	ints := make([]int, len(days))
	for i, d := range days {
		ints[i] = int(d)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	var ints []int
	if err := json.Unmarshal([]byte(s), &ints); err != nil {
		return nil, fmt.Errorf("parsing frequency days: %w", err)
	}
	if len(ints) == 0 {
		return nil, nil
	}
	days := make([]time.Weekday, len(ints))
	for i, d := range ints {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("parsing frequency days: weekday %d out of range", d)
		}
		days[i] = time.Weekday(d)
	}
	return days, nil
}
