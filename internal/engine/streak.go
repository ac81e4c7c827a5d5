package engine

import (
	"time"

	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
)

// nextStreak applies one completion to h. The chain continues only when the
// previous completion was yesterday; any other history restarts it at 1.
func nextStreak(h models.Habit, now time.Time) models.Habit {
	if h.LastCompletedDate == utils.Yesterday(now) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.LastCompletedDate = utils.Today(now)
	h.UpdatedAt = now
	return h
}

// streakBroken reports whether h's chain has lapsed as of now: its last
// completion is neither today nor yesterday.
func streakBroken(h models.Habit, now time.Time) bool {
	last := h.LastCompletedDate
	return last != utils.Today(now) && last != utils.Yesterday(now)
}

// resetBrokenStreaks zeroes every lapsed streak and returns how many changed.
func (e *Engine) resetBrokenStreaks(now time.Time) int {
	reset := 0
	for _, h := range e.store.Habits() {
		if h.Streak == 0 || !streakBroken(h, now) {
			continue
		}
		h.Streak = 0
		h.UpdatedAt = now
		e.store.PutHabit(h)
		e.writer.SaveHabit(h)
		reset++
	}
	return reset
}
