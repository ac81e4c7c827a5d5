// Package tui is the interactive board: one tab per bucket, a reminder
// banner, search, and huh forms for adding and planning.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/config"
	"github.com/julianstephens/dayboard/internal/engine"
	"github.com/julianstephens/dayboard/internal/reminder"
	"github.com/julianstephens/dayboard/internal/tui/components/tasklist"
	"github.com/julianstephens/dayboard/internal/tui/forms"
)

type formKind int

const (
	formNone formKind = iota
	formAddTask
	formEditTask
	formAddHabit
	formPlan
)

// chrome is the number of rows taken by tabs, banner, search, status and help.
const chrome = 8

type tickMsg time.Time

type Model struct {
	engine   *engine.Engine
	reminder *reminder.Trigger
	keys     KeyMap
	help     help.Model
	list     tasklist.Model
	search   textinput.Model
	poll     time.Duration

	board     board.Board
	tab       int
	searching bool
	status    string

	form     *huh.Form
	formKind formKind
	taskIn   *forms.TaskInput
	habitIn  *forms.HabitInput
	planIn   *forms.PlanInput
	planDay  string
	editing  board.Item

	width    int
	height   int
	quitting bool
}

func NewModel(eng *engine.Engine, trig *reminder.Trigger, cfg config.Config) Model {
	keys := NewKeyMap(cfg.Keys)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles and descriptions"
	search.CharLimit = 64

	m := Model{
		engine:   eng,
		reminder: trig,
		keys:     keys,
		help:     help.New(),
		list:     tasklist.New(keys.Up, keys.Down, 0, 0),
		search:   search,
		poll:     cfg.ReminderPoll(),
		tab:      indexOf(board.Upcoming),
	}
	m.reminder.Check(eng.Now())
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick(m.poll)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) bucket() board.Bucket {
	return board.Buckets[m.tab]
}

// refresh re-projects the board from the engine and applies the search query.
func (m *Model) refresh() {
	m.board = m.engine.Board().Filter(m.search.Value())
	m.list.SetItems(m.board.Items(m.bucket()), m.board.Today)
	if m.search.Value() != "" {
		m.list.SetEmptyMessage("No matches for \"" + m.search.Value() + "\".")
	} else {
		m.list.SetEmptyMessage(emptyMessages[m.bucket()])
	}
}

var emptyMessages = map[board.Bucket]string{
	board.Backlog:   "Backlog is clear.",
	board.Upcoming:  "Nothing scheduled. Press 'a' to add a task.",
	board.Habits:    "No habits due. Press 'a' to add one.",
	board.Completed: "Nothing completed yet.",
	board.Discarded: "Nothing discarded.",
}

func indexOf(b board.Bucket) int {
	for i, bucket := range board.Buckets {
		if bucket == b {
			return i
		}
	}
	return 0
}
