package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	streakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// FormatTask renders one task line: marker, short id, title, streak.
func FormatTask(it board.Item) string {
	marker := "[ ]"
	title := it.Title
	switch {
	case it.Completed:
		marker = "[x]"
		title = doneStyle.Render(title)
	case it.Discarded:
		marker = "[-]"
		title = droppedStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s %s", marker, idStyle.Render(ShortID(it.ID)), title)
	if it.Kind == models.TaskKindHabit && it.Streak > 0 {
		line += " " + streakStyle.Render(fmt.Sprintf("(%d day streak)", it.Streak))
	}
	return line
}

// RenderBoard writes the given buckets, grouping each by due date.
// Empty buckets are skipped unless showEmpty is set.
func RenderBoard(w io.Writer, b board.Board, buckets []board.Bucket, showEmpty bool) {
	first := true
	for _, bucket := range buckets {
		items := b.Items(bucket)
		if len(items) == 0 && !showEmpty {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d)", bucket, len(items))))
		if len(items) == 0 {
			fmt.Fprintln(w, dateStyle.Render("  nothing here"))
			continue
		}
		for _, group := range board.GroupByDate(items) {
			fmt.Fprintln(w, dateStyle.Render("  "+dayLabel(group.Day, b.Today)))
			for _, it := range group.Items {
				fmt.Fprintln(w, "    "+FormatTask(it))
			}
		}
	}
	if first {
		fmt.Fprintln(w, "Nothing on the board.")
	}
}

func dayLabel(day, today string) string {
	if day == today {
		return day + " (today)"
	}
	return day
}

// Indent prefixes every line of s.
func Indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
