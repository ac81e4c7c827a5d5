package engine

import (
	"strings"

	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
	"github.com/julianstephens/dayboard/internal/validation"
)

// CreateHabit adds a habit and, when it recurs today, today's instance.
func (e *Engine) CreateHabit(spec models.HabitSpec) (models.Habit, error) {
	spec.Title = strings.TrimSpace(spec.Title)
	if err := validation.HabitSpec(spec); err != nil {
		return models.Habit{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	habit := e.store.CreateHabit(spec, now)
	e.writer.SaveHabit(habit)
	e.ensureInstance(habit, utils.Today(now), now)
	return habit, nil
}

// UpdateHabit replaces a habit's title, description and frequency. Pending
// instances dated today or later take the new title and description, and
// today's instance is generated if the new frequency includes today.
func (e *Engine) UpdateHabit(id string, spec models.HabitSpec) (models.Habit, bool, error) {
	spec.Title = strings.TrimSpace(spec.Title)
	if err := validation.HabitSpec(spec); err != nil {
		return models.Habit{}, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	habit, ok := e.store.UpdateHabit(id, spec, now)
	if !ok {
		logger.Debug("Habit update skipped, not found", "id", id)
		return habit, false, nil
	}
	e.writer.SaveHabit(habit)

	today := utils.Today(now)
	updated := e.store.UpdateTasks(
		func(t models.Task) bool {
			return t.HabitID == id && t.IsPending() && t.DueDate >= today
		},
		func(t *models.Task) {
			t.Title = habit.Title
			t.Description = habit.Description
			t.UpdatedAt = now
		},
	)
	for _, t := range updated {
		e.writer.SaveTask(t)
	}

	e.ensureInstance(habit, today, now)
	return habit, true, nil
}

// DeleteHabit removes a habit and its instances: everything dated today or
// later, plus pending instances from earlier days. Completed past instances
// stay as history.
func (e *Engine) DeleteHabit(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.store.DeleteHabit(id); !ok {
		logger.Debug("Habit delete skipped, not found", "id", id)
		return false
	}
	e.writer.DeleteHabit(id)

	today := utils.Today(e.clock())
	removed := e.store.RemoveTasks(func(t models.Task) bool {
		if t.HabitID != id {
			return false
		}
		return t.DueDate >= today || !t.Completed
	})
	for _, t := range removed {
		e.writer.DeleteTask(t.ID)
	}
	logger.Debug("Habit deleted", "id", id, "instances_removed", len(removed))
	return true
}
