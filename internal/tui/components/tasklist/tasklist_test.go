package tasklist

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/models"
)

func item(title, due string, kind models.TaskKind) board.Item {
	task := models.Task{ID: title, Title: title, DueDate: due, Kind: kind}
	if kind == models.TaskKindHabit {
		task.HabitID = "h-" + title
	}
	return board.Item{Task: task}
}

func TestItemRendering(t *testing.T) {
	pending := Item{Item: item("Buy milk", "2026-03-10", models.TaskKindStandalone), today: "2026-03-10"}
	assert.Equal(t, "[ ] Buy milk", pending.Title())
	assert.Equal(t, "due today", pending.Description())

	habit := Item{Item: item("Stretch", "2026-03-09", models.TaskKindHabit), today: "2026-03-10"}
	habit.Completed = true
	habit.Streak = 4
	assert.Equal(t, "[x] Stretch", habit.Title())
	assert.Equal(t, "due 2026-03-09 | habit, 4 day streak", habit.Description())

	dropped := Item{Item: item("Call", "2026-03-08", models.TaskKindStandalone)}
	dropped.Discarded = true
	dropped.Item.Description = "plumber"
	assert.Equal(t, "[-] Call", dropped.Title())
	assert.Equal(t, "due 2026-03-08 | plumber", dropped.Description())
}

func TestSelectionClampsAfterShrink(t *testing.T) {
	m := New(key.NewBinding(key.WithKeys("k")), key.NewBinding(key.WithKeys("j")), 80, 20)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Nothing here.")

	m.SetItems([]board.Item{
		item("a", "2026-03-10", models.TaskKindStandalone),
		item("b", "2026-03-10", models.TaskKindStandalone),
	}, "2026-03-10")
	m.list.Select(1)

	m.SetItems([]board.Item{item("a", "2026-03-10", models.TaskKindStandalone)}, "2026-03-10")
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Title)
}
