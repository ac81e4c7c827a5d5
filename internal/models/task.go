package models

import "time"

type TaskKind string

const (
	TaskKindStandalone TaskKind = "standalone"
	TaskKindHabit      TaskKind = "habit"
)

// Task is a single schedulable item. Kind discriminates standalone tasks from
// habit instances; HabitID is only meaningful for TaskKindHabit.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"due_date"` // YYYY-MM-DD format
	Kind        TaskKind   `json:"kind"`
	HabitID     string     `json:"habit_id,omitempty"`
	Completed   bool       `json:"completed"`
	Discarded   bool       `json:"discarded"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsHabitInstance reports whether the task was generated from a habit.
func (t Task) IsHabitInstance() bool {
	return t.Kind == TaskKindHabit && t.HabitID != ""
}

// IsPending reports whether the task still awaits an outcome.
func (t Task) IsPending() bool {
	return !t.Completed && !t.Discarded
}

// NewTask carries the user-supplied fields for a standalone task.
type NewTask struct {
	Title       string
	Description string
	DueDate     string // optional, defaults to today
}

// TaskPatch is the editable subset of a task.
type TaskPatch struct {
	Title       string
	Description string
}
