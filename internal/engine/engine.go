// Package engine owns the in-memory task and habit records and applies every
// state transition to them: user actions, the daily rollover, and habit
// completion streaks. Each transition runs under one lock and is followed by
// fire-and-forget persistence writes.
package engine

import (
	"sync"
	"time"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/records"
	"github.com/julianstephens/dayboard/internal/utils"
	"github.com/julianstephens/dayboard/internal/validation"
)

// Writer receives the records touched by each transition. Implementations
// must not block for long; storage.AsyncWriter queues them.
type Writer interface {
	SaveTask(models.Task)
	DeleteTask(id string)
	SaveHabit(models.Habit)
	DeleteHabit(id string)
	SaveSettings(models.Settings)
}

type nopWriter struct{}

func (nopWriter) SaveTask(models.Task)         {}
func (nopWriter) DeleteTask(string)            {}
func (nopWriter) SaveHabit(models.Habit)       {}
func (nopWriter) DeleteHabit(string)           {}
func (nopWriter) SaveSettings(models.Settings) {}

type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLocation sets the timezone whose calendar defines "today".
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

type Engine struct {
	mu       sync.Mutex
	store    *records.Store
	settings models.Settings
	writer   Writer
	now      func() time.Time
	loc      *time.Location
}

// New returns an empty engine. A nil writer discards all writes.
func New(writer Writer, opts ...Option) *Engine {
	if writer == nil {
		writer = nopWriter{}
	}
	e := &Engine{
		store:  records.New(),
		writer: writer,
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the in-memory state with a persisted snapshot. It does not
// run the day transition; call Initialize afterwards.
func (e *Engine) Load(snap models.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Load(snap.Tasks, snap.Habits)
	e.settings = snap.Settings
}

func (e *Engine) clock() time.Time {
	return e.now().In(e.loc)
}

// Today returns the current day key in the engine's timezone.
func (e *Engine) Today() string {
	return utils.Today(e.clock())
}

// Now returns the engine's current time in its timezone.
func (e *Engine) Now() time.Time {
	return e.clock()
}

// Board projects the current records into display buckets.
func (e *Engine) Board() board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return board.Project(e.store.Tasks(), e.store.Habits(), utils.Today(e.clock()))
}

// Habits returns a copy of every habit.
func (e *Engine) Habits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Habits()
}

// Tasks returns every task ordered by due date.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Tasks()
}

// Settings returns the persisted day and reminder bookkeeping.
func (e *Engine) Settings() models.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// FindTask resolves a task by id or unique id prefix.
func (e *Engine) FindTask(ref string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.FindTask(ref)
}

// FindHabit resolves a habit by id, unique id prefix, or title.
func (e *Engine) FindHabit(ref string) (models.Habit, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.FindHabit(ref)
}

// RecordReminderDismissal stores the reminder cooldown start. A nil time
// clears it.
func (e *Engine) RecordReminderDismissal(at *time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if at != nil {
		t := *at
		at = &t
	}
	e.settings.ReminderDismissedAt = at
	e.writer.SaveSettings(e.settings)
}

// Validate checks the loaded records for invariant violations.
func (e *Engine) Validate() validation.ValidationResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return validation.Records(e.store.Tasks(), e.store.Habits())
}
