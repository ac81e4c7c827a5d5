package engine

import (
	"time"

	"github.com/julianstephens/dayboard/internal/constants"
	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
)

// Transition summarizes one run of the day transition.
type Transition struct {
	Day              string
	StreaksReset     int
	InstancesCreated int
}

// Initialize runs the day transition for today. It is safe to call any
// number of times; a second run on the same day changes nothing.
func (e *Engine) Initialize() Transition {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transition(e.clock())
}

// Tick runs the day transition only if the calendar day has changed since the
// last one. Consumers call it periodically; it reports whether a transition ran.
func (e *Engine) Tick() (Transition, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock()
	if utils.Today(now) == e.settings.LastProcessedDate {
		return Transition{}, false
	}
	return e.transition(now), true
}

func (e *Engine) transition(now time.Time) Transition {
	today := utils.Today(now)
	res := Transition{Day: today}

	res.StreaksReset = e.resetBrokenStreaks(now)
	for _, day := range e.backfillDays(today) {
		res.InstancesCreated += e.generateInstances(day, now)
	}

	// Backlog membership is derived by board.Project, not stored.

	if e.settings.LastProcessedDate != today {
		e.settings.LastProcessedDate = today
		e.writer.SaveSettings(e.settings)
	}

	if res.StreaksReset > 0 || res.InstancesCreated > 0 {
		logger.Info("Day transition applied", "day", today, "streaks_reset", res.StreaksReset, "instances", res.InstancesCreated)
	}
	return res
}

// backfillDays returns the days that need habit instances: every day after
// the last processed one through today. With no usable record (first run, or
// a stored date in the future after a clock change) only today is generated.
// A stored date equal to today means nothing is missing.
func (e *Engine) backfillDays(today string) []string {
	last := e.settings.LastProcessedDate
	if last == today {
		return nil
	}
	if last == "" || !utils.IsDayKey(last) || last > today {
		return []string{today}
	}

	from, err := utils.AddDays(last, 1)
	if err != nil {
		return []string{today}
	}
	days, err := utils.DayRange(from, today)
	if err != nil || len(days) == 0 {
		return []string{today}
	}
	if len(days) > constants.MaxBackfillDays {
		logger.Warn("Backfill truncated", "from", from, "to", today, "days", len(days), "max", constants.MaxBackfillDays)
		days = days[len(days)-constants.MaxBackfillDays:]
	}
	return days
}

// generateInstances creates the missing habit instances for day and returns
// how many were created. Days before a habit existed are skipped.
func (e *Engine) generateInstances(day string, now time.Time) int {
	created := 0
	for _, h := range e.store.Habits() {
		if !h.CreatedAt.IsZero() && day < utils.DayKey(h.CreatedAt.In(e.loc)) {
			continue
		}
		if e.ensureInstance(h, day, now) {
			created++
		}
	}
	return created
}

// ensureInstance creates the instance of h for day if h recurs on that day and
// no instance exists yet.
func (e *Engine) ensureInstance(h models.Habit, day string, now time.Time) bool {
	if !utils.AppearsOnDay(h, day) || e.store.HasHabitInstance(h.ID, day) {
		return false
	}
	task := e.store.CreateHabitInstance(h, day, now)
	e.writer.SaveTask(task)
	return true
}
