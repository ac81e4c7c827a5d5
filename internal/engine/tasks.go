package engine

import (
	"strings"

	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
	"github.com/julianstephens/dayboard/internal/validation"
)

// CreateTask adds a standalone task; an empty due date means today.
func (e *Engine) CreateTask(data models.NewTask) (models.Task, error) {
	data.Title = strings.TrimSpace(data.Title)
	if err := validation.NewTask(data); err != nil {
		return models.Task{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	task := e.store.CreateTask(data, utils.Today(now), now)
	e.writer.SaveTask(task)
	return task, nil
}

// UpdateTask edits a task's title and description. A missing task is not an
// error; ok reports whether anything changed.
func (e *Engine) UpdateTask(id, dueDate string, patch models.TaskPatch) (models.Task, bool, error) {
	patch.Title = strings.TrimSpace(patch.Title)
	if err := validation.Title(patch.Title); err != nil {
		return models.Task{}, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task, ok := e.store.UpdateTask(id, dueDate, patch, e.clock())
	if !ok {
		logger.Debug("Update skipped, task not found", "id", id, "due", dueDate)
		return task, false, nil
	}
	e.writer.SaveTask(task)
	return task, true, nil
}

// DeleteTask removes a task. Deleting a missing task is a no-op.
func (e *Engine) DeleteTask(id, dueDate string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.store.DeleteTask(id, dueDate); !ok {
		logger.Debug("Delete skipped, task not found", "id", id, "due", dueDate)
		return false
	}
	e.writer.DeleteTask(id)
	return true
}
