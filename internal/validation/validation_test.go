package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/dayboard/internal/models"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"regular title", "Buy milk", false},
		{"empty", "", true},
		{"whitespace only", "   \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Title(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("Title() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("expected ErrEmptyTitle, got %v", err)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		data    models.NewTask
		wantErr error
	}{
		{"no due date", models.NewTask{Title: "Read"}, nil},
		{"with due date", models.NewTask{Title: "Read", DueDate: "2026-04-01"}, nil},
		{"bad due date", models.NewTask{Title: "Read", DueDate: "04/01/2026"}, ErrInvalidDay},
		{"empty title", models.NewTask{Title: ""}, ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTask(tt.data)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHabitSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    models.HabitSpec
		wantErr error
	}{
		{"daily", models.HabitSpec{Title: "Meditate", Frequency: models.Daily()}, nil},
		{"custom", models.HabitSpec{Title: "Run", Frequency: models.OnWeekdays(time.Monday, time.Thursday)}, nil},
		{"custom with no days", models.HabitSpec{Title: "Run", Frequency: models.Frequency{Type: models.FrequencyCustom}}, nil},
		{"weekday out of range", models.HabitSpec{Title: "Run", Frequency: models.OnWeekdays(time.Weekday(7))}, ErrInvalidFrequency},
		{"unknown type", models.HabitSpec{Title: "Run", Frequency: models.Frequency{Type: "hourly"}}, ErrInvalidFrequency},
		{"blank title", models.HabitSpec{Title: " ", Frequency: models.Daily()}, ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HabitSpec(tt.spec)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecords(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Title: "Meditate", DueDate: "2026-01-05", Kind: models.TaskKindHabit, HabitID: "h1"},
		{ID: "b", Title: "Meditate", DueDate: "2026-01-05", Kind: models.TaskKindHabit, HabitID: "h1"},
		{ID: "c", Title: "Meditate", DueDate: "2026-01-06", Kind: models.TaskKindHabit, HabitID: "h1"},
		{ID: "d", Title: "Taxes", DueDate: "2026-13-01", Kind: models.TaskKindStandalone},
		{ID: "e", Title: "Orphan", DueDate: "2026-01-05", Kind: models.TaskKindHabit},
	}
	habits := []models.Habit{
		{ID: "h1", Title: "Meditate", Streak: -1},
	}

	result := Records(tasks, habits)
	if !result.HasConflicts() {
		t.Fatal("expected conflicts")
	}

	counts := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		counts[c.Type]++
	}
	if counts[ConflictDuplicateInstance] != 1 {
		t.Errorf("expected 1 duplicate instance conflict, got %d", counts[ConflictDuplicateInstance])
	}
	if counts[ConflictInvalidDueDate] != 1 {
		t.Errorf("expected 1 invalid due date conflict, got %d", counts[ConflictInvalidDueDate])
	}
	if counts[ConflictKindMismatch] != 1 {
		t.Errorf("expected 1 kind mismatch conflict, got %d", counts[ConflictKindMismatch])
	}
	if counts[ConflictNegativeStreak] != 1 {
		t.Errorf("expected 1 negative streak conflict, got %d", counts[ConflictNegativeStreak])
	}
}

func TestRecordsClean(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Title: "Meditate", DueDate: "2026-01-05", Kind: models.TaskKindHabit, HabitID: "h1"},
		{ID: "b", Title: "Groceries", DueDate: "2026-01-05", Kind: models.TaskKindStandalone},
	}
	result := Records(tasks, []models.Habit{{ID: "h1", Title: "Meditate", Streak: 3}})
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}
