// Package board derives the display buckets from the current task and habit
// records. Projection is a pure function; nothing is cached between calls.
package board

import (
	"sort"
	"strings"

	"github.com/julianstephens/dayboard/internal/models"
)

type Bucket int

const (
	Backlog Bucket = iota
	Upcoming
	Habits
	Completed
	Discarded
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{Backlog, Upcoming, Habits, Completed, Discarded}

func (b Bucket) String() string {
	switch b {
	case Backlog:
		return "Backlog"
	case Upcoming:
		return "Today"
	case Habits:
		return "Habits"
	case Completed:
		return "Completed"
	case Discarded:
		return "Discarded"
	default:
		return "Unknown"
	}
}

// Item is a task plus the current streak of its habit (0 for standalone tasks).
type Item struct {
	models.Task
	Streak int
}

type Board struct {
	Today     string
	Backlog   []Item
	Upcoming  []Item
	Habits    []Item
	Completed []Item
	Discarded []Item
}

// Project sorts tasks into buckets relative to today:
//
//   - Backlog: dated before today, neither completed nor discarded; newest first.
//   - Upcoming: standalone, dated today or later, not discarded; soonest first.
//   - Habits: habit instances dated today or later, not discarded; pending first.
//   - Completed: every completed task; newest first.
//   - Discarded: every discarded task; newest first.
//
// A task may appear in more than one bucket (a completed task due today is in
// both Upcoming and Completed).
func Project(tasks []models.Task, habits []models.Habit, today string) Board {
	streaks := make(map[string]int, len(habits))
	for _, h := range habits {
		streaks[h.ID] = h.Streak
	}

	ordered := make([]models.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DueDate < ordered[j].DueDate
	})

	b := Board{Today: today}
	for _, t := range ordered {
		item := Item{Task: t}
		if t.IsHabitInstance() {
			item.Streak = streaks[t.HabitID]
		}

		if t.DueDate < today && t.IsPending() {
			b.Backlog = append(b.Backlog, item)
		}
		if t.DueDate >= today && !t.Discarded {
			if t.IsHabitInstance() {
				b.Habits = append(b.Habits, item)
			} else {
				b.Upcoming = append(b.Upcoming, item)
			}
		}
		if t.Completed {
			b.Completed = append(b.Completed, item)
		}
		if t.Discarded {
			b.Discarded = append(b.Discarded, item)
		}
	}

	newestFirst(b.Backlog)
	newestFirst(b.Completed)
	newestFirst(b.Discarded)
	sort.SliceStable(b.Habits, func(i, j int) bool {
		return !b.Habits[i].Completed && b.Habits[j].Completed
	})

	return b
}

func newestFirst(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate > items[j].DueDate
	})
}

// Items returns the contents of one bucket.
func (b Board) Items(bucket Bucket) []Item {
	switch bucket {
	case Backlog:
		return b.Backlog
	case Upcoming:
		return b.Upcoming
	case Habits:
		return b.Habits
	case Completed:
		return b.Completed
	case Discarded:
		return b.Discarded
	default:
		return nil
	}
}

// Filter keeps items whose title or description contains query,
// case-insensitively. An empty query returns the board unchanged.
func (b Board) Filter(query string) Board {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return b
	}
	match := func(items []Item) []Item {
		var out []Item
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Title), query) ||
				strings.Contains(strings.ToLower(it.Description), query) {
				out = append(out, it)
			}
		}
		return out
	}
	return Board{
		Today:     b.Today,
		Backlog:   match(b.Backlog),
		Upcoming:  match(b.Upcoming),
		Habits:    match(b.Habits),
		Completed: match(b.Completed),
		Discarded: match(b.Discarded),
	}
}

// DateGroup is a run of items sharing a due date.
type DateGroup struct {
	Day   string
	Items []Item
}

// GroupByDate splits items into runs of equal due date, keeping their order.
func GroupByDate(items []Item) []DateGroup {
	var groups []DateGroup
	for _, it := range items {
		if n := len(groups); n > 0 && groups[n-1].Day == it.DueDate {
			groups[n-1].Items = append(groups[n-1].Items, it)
			continue
		}
		groups = append(groups, DateGroup{Day: it.DueDate, Items: []Item{it}})
	}
	return groups
}
