package engine

import (
	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
	"github.com/julianstephens/dayboard/internal/validation"
)

// CompleteTask marks a pending task completed. For a habit instance dated
// today or later the owning habit's streak advances in the same step; backlog
// instances are cleared without credit. Missing, completed, or discarded
// tasks are left alone and ok is false.
func (e *Engine) CompleteTask(id, dueDate string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, found := e.store.Task(id, dueDate)
	if !found || !task.IsPending() {
		logger.Debug("Complete skipped", "id", id, "due", dueDate, "found", found)
		return task, false
	}

	now := e.clock()
	switch {
	case !task.IsHabitInstance():
	case task.DueDate < utils.Today(now):
		logger.Debug("Backlog instance completed without credit", "id", id, "due", dueDate)
	default:
		if habit, ok := e.store.Habit(task.HabitID); ok {
			habit = nextStreak(habit, now)
			e.store.PutHabit(habit)
			e.writer.SaveHabit(habit)
		} else {
			logger.Debug("Completing instance of missing habit", "id", id, "habit_id", task.HabitID)
		}
	}

	task, _ = e.store.SetCompleted(id, dueDate, true, now)
	e.writer.SaveTask(task)
	return task, true
}

// ClearWithoutCredit marks a pending task completed without touching any
// habit streak. Used for stale backlog items.
func (e *Engine) ClearWithoutCredit(id, dueDate string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, found := e.store.Task(id, dueDate)
	if !found || !task.IsPending() {
		logger.Debug("Clear skipped", "id", id, "due", dueDate, "found", found)
		return task, false
	}

	task, _ = e.store.SetCompleted(id, dueDate, true, e.clock())
	e.writer.SaveTask(task)
	return task, true
}

// RestoreTask returns a completed or discarded task to pending. Standalone
// tasks dated before today move to today; habit instances keep their date so
// no day ends up with two instances of the same habit. Streak credit granted
// by an earlier completion is kept.
func (e *Engine) RestoreTask(id, dueDate string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, found := e.store.Task(id, dueDate)
	if !found || task.IsPending() {
		logger.Debug("Restore skipped", "id", id, "due", dueDate, "found", found)
		return task, false
	}

	now := e.clock()
	today := utils.Today(now)
	e.store.SetCompleted(id, dueDate, false, now)
	task, _ = e.store.SetDiscarded(id, dueDate, false, now)
	if !task.IsHabitInstance() && task.DueDate < today {
		task, _ = e.store.MoveTask(id, dueDate, today, now)
	}
	e.writer.SaveTask(task)
	return task, true
}

// DiscardTask drops a pending task without completing it.
func (e *Engine) DiscardTask(id, dueDate string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, found := e.store.Task(id, dueDate)
	if !found || !task.IsPending() {
		logger.Debug("Discard skipped", "id", id, "due", dueDate, "found", found)
		return task, false
	}

	task, _ = e.store.SetDiscarded(id, dueDate, true, e.clock())
	e.writer.SaveTask(task)
	return task, true
}

// RescheduleTask moves a pending standalone task to newDate (today when
// empty). Habit instances are bound to their day and cannot move.
func (e *Engine) RescheduleTask(id, dueDate, newDate string) (models.Task, bool, error) {
	if err := validation.Day(newDate); err != nil {
		return models.Task{}, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task, found := e.store.Task(id, dueDate)
	if !found || !task.IsPending() || task.IsHabitInstance() {
		logger.Debug("Reschedule skipped", "id", id, "due", dueDate, "found", found)
		return task, false, nil
	}

	now := e.clock()
	if newDate == "" {
		newDate = utils.Today(now)
	}
	if newDate == dueDate {
		return task, false, nil
	}

	task, _ = e.store.MoveTask(id, dueDate, newDate, now)
	e.writer.SaveTask(task)
	return task, true, nil
}
