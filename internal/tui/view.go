package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayboard/internal/board"
)

const reminderText = "Time to plan tomorrow. Press 'p' to plan"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	sections := []string{m.viewTabs()}
	if m.reminder.Shown() {
		sections = append(sections, bannerStyle.Render(reminderText+", "+m.keys.Dismiss.Help().Key+" to dismiss."))
	}
	if m.searching || m.search.Value() != "" {
		sections = append(sections, searchStyle.Render(m.search.View()))
	}
	sections = append(sections, docStyle.Render(m.list.View()))
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(board.Buckets))
	for i, bucket := range board.Buckets {
		title := fmt.Sprintf("%s (%d)", bucket, len(m.board.Items(bucket)))
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
