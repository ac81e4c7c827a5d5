// Package records holds the in-memory collection of tasks and habits.
//
// Tasks are bucketed by due date so that day-scoped lookups (habit instance
// checks, backlog scans) touch a single bucket. All accessors return copies;
// nothing outside the store aliases its internal slices.
package records

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dayboard/internal/models"
)

type Store struct {
	tasks  map[string][]models.Task // due date -> tasks in insertion order
	habits []models.Habit
	newID  func() string
}

func New() *Store {
	return &Store{
		tasks: make(map[string][]models.Task),
		newID: uuid.NewString,
	}
}

// Load replaces the store contents with previously persisted records.
func (s *Store) Load(tasks []models.Task, habits []models.Habit) {
	s.tasks = make(map[string][]models.Task)
	for _, t := range tasks {
		s.tasks[t.DueDate] = append(s.tasks[t.DueDate], t)
	}
	s.habits = make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		s.habits = append(s.habits, cloneHabit(h))
	}
}

// ---- tasks ----

// CreateTask adds a standalone task. An empty due date means today.
func (s *Store) CreateTask(data models.NewTask, today string, at time.Time) models.Task {
	due := data.DueDate
	if due == "" {
		due = today
	}
	task := models.Task{
		ID:          s.newID(),
		Title:       data.Title,
		Description: data.Description,
		DueDate:     due,
		Kind:        models.TaskKindStandalone,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	s.tasks[due] = append(s.tasks[due], task)
	return task
}

// CreateHabitInstance adds the instance of habit for day.
// Callers check HasHabitInstance first; the store does not deduplicate.
func (s *Store) CreateHabitInstance(habit models.Habit, day string, at time.Time) models.Task {
	task := models.Task{
		ID:          s.newID(),
		Title:       habit.Title,
		Description: habit.Description,
		DueDate:     day,
		Kind:        models.TaskKindHabit,
		HabitID:     habit.ID,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	s.tasks[day] = append(s.tasks[day], task)
	return task
}

// Task returns the task with id in the dueDate bucket.
func (s *Store) Task(id, dueDate string) (models.Task, bool) {
	for _, t := range s.tasks[dueDate] {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// FindTask locates a task by exact id or unique id prefix across all dates.
func (s *Store) FindTask(idOrPrefix string) (models.Task, bool) {
	if idOrPrefix == "" {
		return models.Task{}, false
	}
	var match models.Task
	matches := 0
	for _, bucket := range s.tasks {
		for _, t := range bucket {
			if t.ID == idOrPrefix {
				return t, true
			}
			if strings.HasPrefix(t.ID, idOrPrefix) {
				match = t
				matches++
			}
		}
	}
	if matches == 1 {
		return match, true
	}
	return models.Task{}, false
}

// UpdateTask applies patch to the task's title and description.
func (s *Store) UpdateTask(id, dueDate string, patch models.TaskPatch, at time.Time) (models.Task, bool) {
	return s.mutate(id, dueDate, func(t *models.Task) {
		t.Title = patch.Title
		t.Description = patch.Description
		t.UpdatedAt = at
	})
}

// SetCompleted sets the completed flag directly.
func (s *Store) SetCompleted(id, dueDate string, value bool, at time.Time) (models.Task, bool) {
	return s.mutate(id, dueDate, func(t *models.Task) {
		t.Completed = value
		if value {
			completedAt := at
			t.CompletedAt = &completedAt
		} else {
			t.CompletedAt = nil
		}
		t.UpdatedAt = at
	})
}

// SetDiscarded sets the discarded flag directly.
func (s *Store) SetDiscarded(id, dueDate string, value bool, at time.Time) (models.Task, bool) {
	return s.mutate(id, dueDate, func(t *models.Task) {
		t.Discarded = value
		t.UpdatedAt = at
	})
}

// MoveTask re-files a task under a new due date.
func (s *Store) MoveTask(id, from, to string, at time.Time) (models.Task, bool) {
	task, ok := s.DeleteTask(id, from)
	if !ok {
		return models.Task{}, false
	}
	task.DueDate = to
	task.UpdatedAt = at
	s.tasks[to] = append(s.tasks[to], task)
	return task, true
}

// DeleteTask removes the task and returns it.
func (s *Store) DeleteTask(id, dueDate string) (models.Task, bool) {
	bucket := s.tasks[dueDate]
	for i, t := range bucket {
		if t.ID == id {
			s.tasks[dueDate] = slices.Delete(bucket, i, i+1)
			if len(s.tasks[dueDate]) == 0 {
				delete(s.tasks, dueDate)
			}
			return t, true
		}
	}
	return models.Task{}, false
}

// RemoveTasks deletes every task matching pred and returns the removed tasks.
func (s *Store) RemoveTasks(pred func(models.Task) bool) []models.Task {
	var removed []models.Task
	for day, bucket := range s.tasks {
		kept := bucket[:0]
		for _, t := range bucket {
			if pred(t) {
				removed = append(removed, t)
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			delete(s.tasks, day)
		} else {
			s.tasks[day] = kept
		}
	}
	sortTasks(removed)
	return removed
}

// UpdateTasks applies fn to every task matching pred and returns the updated tasks.
func (s *Store) UpdateTasks(pred func(models.Task) bool, fn func(*models.Task)) []models.Task {
	var updated []models.Task
	for _, bucket := range s.tasks {
		for i := range bucket {
			if pred(bucket[i]) {
				fn(&bucket[i])
				updated = append(updated, bucket[i])
			}
		}
	}
	sortTasks(updated)
	return updated
}

// HasHabitInstance reports whether the habit already has an instance on day.
func (s *Store) HasHabitInstance(habitID, day string) bool {
	for _, t := range s.tasks[day] {
		if t.HabitID == habitID {
			return true
		}
	}
	return false
}

// Tasks returns every task ordered by due date, then insertion order.
func (s *Store) Tasks() []models.Task {
	days := s.Days()
	var all []models.Task
	for _, day := range days {
		all = append(all, s.tasks[day]...)
	}
	return all
}

// Days returns the due dates that currently hold tasks, ascending.
func (s *Store) Days() []string {
	days := make([]string, 0, len(s.tasks))
	for day := range s.tasks {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

func (s *Store) mutate(id, dueDate string, fn func(*models.Task)) (models.Task, bool) {
	bucket := s.tasks[dueDate]
	for i := range bucket {
		if bucket[i].ID == id {
			fn(&bucket[i])
			return bucket[i], true
		}
	}
	return models.Task{}, false
}

func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
}

// ---- habits ----

func (s *Store) CreateHabit(spec models.HabitSpec, at time.Time) models.Habit {
	habit := models.Habit{
		ID:          s.newID(),
		Title:       spec.Title,
		Description: spec.Description,
		Frequency:   cloneFrequency(spec.Frequency),
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	s.habits = append(s.habits, habit)
	return cloneHabit(habit)
}

// UpdateHabit replaces the habit's title, description and frequency.
func (s *Store) UpdateHabit(id string, spec models.HabitSpec, at time.Time) (models.Habit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	h := &s.habits[i]
	h.Title = spec.Title
	h.Description = spec.Description
	h.Frequency = cloneFrequency(spec.Frequency)
	h.UpdatedAt = at
	return cloneHabit(*h), true
}

// PutHabit overwrites an existing habit record, e.g. after a streak change.
func (s *Store) PutHabit(habit models.Habit) bool {
	i := s.habitIndex(habit.ID)
	if i < 0 {
		return false
	}
	s.habits[i] = cloneHabit(habit)
	return true
}

func (s *Store) DeleteHabit(id string) (models.Habit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	h := s.habits[i]
	s.habits = slices.Delete(s.habits, i, i+1)
	return h, true
}

func (s *Store) Habit(id string) (models.Habit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return cloneHabit(s.habits[i]), true
}

// FindHabit locates a habit by exact id, unique id prefix, or exact title.
func (s *Store) FindHabit(ref string) (models.Habit, bool) {
	if h, ok := s.Habit(ref); ok {
		return h, true
	}
	var match models.Habit
	matches := 0
	for _, h := range s.habits {
		if strings.EqualFold(h.Title, ref) || (ref != "" && strings.HasPrefix(h.ID, ref)) {
			match = h
			matches++
		}
	}
	if matches == 1 {
		return cloneHabit(match), true
	}
	return models.Habit{}, false
}

// Habits returns all habits in creation order.
func (s *Store) Habits() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	for i, h := range s.habits {
		out[i] = cloneHabit(h)
	}
	return out
}

func (s *Store) habitIndex(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneHabit(h models.Habit) models.Habit {
	h.Frequency = cloneFrequency(h.Frequency)
	return h
}

func cloneFrequency(f models.Frequency) models.Frequency {
	f.Days = slices.Clone(f.Days)
	return f
}
