package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidDay       = errors.New("invalid day (expected YYYY-MM-DD)")
	ErrInvalidFrequency = errors.New("invalid habit frequency")
)

// Title rejects blank titles.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Day rejects malformed day keys. An empty day is accepted and means "today".
func Day(day string) error {
	if day == "" {
		return nil
	}
	if !utils.IsDayKey(day) {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return nil
}

// Frequency checks the frequency type and weekday range.
func Frequency(f models.Frequency) error {
	switch f.Type {
	case models.FrequencyDaily:
		return nil
	case models.FrequencyCustom:
		for _, d := range f.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidFrequency, d)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidFrequency, f.Type)
	}
}

// NewTask validates user input for a standalone task.
func NewTask(data models.NewTask) error {
	if err := Title(data.Title); err != nil {
		return err
	}
	return Day(data.DueDate)
}

// HabitSpec validates user input for a habit.
func HabitSpec(spec models.HabitSpec) error {
	if err := Title(spec.Title); err != nil {
		return err
	}
	return Frequency(spec.Frequency)
}

// ConflictType represents the type of integrity problem found in stored records
type ConflictType string

const (
	ConflictDuplicateInstance ConflictType = "duplicate_habit_instance"
	ConflictInvalidDueDate    ConflictType = "invalid_due_date"
	ConflictNegativeStreak    ConflictType = "negative_streak"
	ConflictKindMismatch      ConflictType = "kind_mismatch"
)

// Conflict represents a detected problem in the stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	TaskIDs     []string // IDs of tasks involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Records checks loaded tasks and habits against the model invariants.
// It is used on load and by the doctor command; the engine never produces
// these states itself.
func Records(tasks []models.Task, habits []models.Habit) ValidationResult {
	var result ValidationResult

	type instanceKey struct{ habitID, day string }
	instances := make(map[instanceKey][]string)

	for _, task := range tasks {
		if !utils.IsDayKey(task.DueDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDueDate,
				Description: fmt.Sprintf("task %q has invalid due date %q", task.Title, task.DueDate),
				Date:        task.DueDate,
				TaskIDs:     []string{task.ID},
			})
		}

		hasHabit := task.HabitID != ""
		if (task.Kind == models.TaskKindHabit) != hasHabit {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictKindMismatch,
				Description: fmt.Sprintf("task %q has kind %q but habit reference %q", task.Title, task.Kind, task.HabitID),
				TaskIDs:     []string{task.ID},
			})
		}

		if task.IsHabitInstance() {
			k := instanceKey{task.HabitID, task.DueDate}
			instances[k] = append(instances[k], task.ID)
		}
	}

	keys := make([]instanceKey, 0, len(instances))
	for k, ids := range instances {
		if len(ids) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].habitID < keys[j].habitID
	})
	for _, k := range keys {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateInstance,
			Description: fmt.Sprintf("habit %s has %d instances on %s", k.habitID, len(instances[k]), k.day),
			Date:        k.day,
			TaskIDs:     instances[k],
		})
	}

	for _, habit := range habits {
		if habit.Streak < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeStreak,
				Description: fmt.Sprintf("habit %q has negative streak %d", habit.Title, habit.Streak),
			})
		}
	}

	return result
}
