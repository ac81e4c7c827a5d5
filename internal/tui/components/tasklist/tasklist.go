// Package tasklist renders one board bucket as a scrollable list.
package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayboard/internal/board"
)

type Item struct {
	board.Item
	today string
}

func (i Item) Title() string {
	mark := "[ ]"
	switch {
	case i.Completed:
		mark = "[x]"
	case i.Discarded:
		mark = "[-]"
	}
	return mark + " " + i.Item.Title
}

func (i Item) Description() string {
	due := i.DueDate
	if due == i.today {
		due = "today"
	}
	desc := "due " + due
	if i.IsHabitInstance() {
		desc += fmt.Sprintf(" | habit, %d day streak", i.Streak)
	}
	if i.Item.Description != "" {
		desc += " | " + i.Item.Description
	}
	return desc
}

func (i Item) FilterValue() string { return i.Item.Title }

type Model struct {
	list  list.Model
	empty string
}

// New builds an empty list navigated with up and down. Filtering, help and
// the list's own quit keys are disabled; the parent model owns those.
func New(up, down key.Binding, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.CursorUp = up
	l.KeyMap.CursorDown = down
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	return Model{list: l, empty: "Nothing here."}
}

// SetItems replaces the list contents, keeping the cursor in range.
func (m *Model) SetItems(items []board.Item, today string) {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = Item{Item: it, today: today}
	}
	m.list.SetItems(out)
	if n := len(out); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) SetEmptyMessage(msg string) {
	m.empty = msg
}

func (m Model) Selected() (board.Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	if !ok {
		return board.Item{}, false
	}
	return it.Item, true
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  " + m.empty
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
