package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/dayboard/internal/models"
)

func TestAppearsOnDate(t *testing.T) {
	monday := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		habit models.Habit
		date  time.Time
		want  bool
	}{
		{
			name:  "daily appears every day",
			habit: models.Habit{Frequency: models.Daily()},
			date:  tuesday,
			want:  true,
		},
		{
			name:  "custom on matching weekday",
			habit: models.Habit{Frequency: models.OnWeekdays(time.Monday, time.Wednesday)},
			date:  monday,
			want:  true,
		},
		{
			name:  "custom on non-matching weekday",
			habit: models.Habit{Frequency: models.OnWeekdays(time.Monday, time.Wednesday)},
			date:  tuesday,
			want:  false,
		},
		{
			name:  "custom with sunday as zero",
			habit: models.Habit{Frequency: models.OnWeekdays(time.Weekday(0))},
			date:  sunday,
			want:  true,
		},
		{
			name:  "custom with empty day set never appears",
			habit: models.Habit{Frequency: models.Frequency{Type: models.FrequencyCustom}},
			date:  monday,
			want:  false,
		},
		{
			name:  "unknown frequency never appears",
			habit: models.Habit{Frequency: models.Frequency{Type: "fortnightly"}},
			date:  monday,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppearsOnDate(tt.habit, tt.date); got != tt.want {
				t.Errorf("AppearsOnDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppearsOnDateIsDeterministic(t *testing.T) {
	habit := models.Habit{Frequency: models.OnWeekdays(time.Friday)}
	friday := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if !AppearsOnDate(habit, friday.Add(time.Duration(i)*time.Hour)) {
			t.Fatalf("iteration %d: expected habit to appear on friday", i)
		}
	}
}

func TestAppearsOnDay(t *testing.T) {
	habit := models.Habit{Frequency: models.OnWeekdays(time.Monday)}
	if !AppearsOnDay(habit, "2026-01-05") {
		t.Error("expected habit to appear on 2026-01-05 (Monday)")
	}
	if AppearsOnDay(habit, "2026-01-06") {
		t.Error("expected habit not to appear on 2026-01-06 (Tuesday)")
	}
	if AppearsOnDay(models.Habit{Frequency: models.Daily()}, "garbage") {
		t.Error("malformed day should never match")
	}
}
