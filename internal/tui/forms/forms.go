// Package forms holds the huh forms shared by the TUI and the plan command.
package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/utils"
)

type TaskInput struct {
	Title       string
	Description string
	Due         string
}

func (in TaskInput) NewTask() models.NewTask {
	return models.NewTask{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		DueDate:     strings.TrimSpace(in.Due),
	}
}

type HabitInput struct {
	Title       string
	Description string
	Days        []time.Weekday
}

// Spec maps an empty or full weekday selection to a daily habit.
func (in HabitInput) Spec() models.HabitSpec {
	freq := models.Daily()
	if len(in.Days) > 0 && len(in.Days) < 7 {
		freq = models.OnWeekdays(in.Days...)
	}
	return models.HabitSpec{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Frequency:   freq,
	}
}

// PlanInput collects tomorrow's tasks, one title per line.
type PlanInput struct {
	Tasks string
}

// Titles returns the non-blank lines, trimmed, with list bullets removed.
func (in PlanInput) Titles() []string {
	var titles []string
	for _, line := range strings.Split(in.Tasks, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(line[1:])
		}
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles
}

func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func validDay(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || utils.IsDayKey(s) {
		return nil
	}
	return fmt.Errorf("use YYYY-MM-DD")
}

func NewTaskForm(in *TaskInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(notBlank("title")),
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, blank for today").
				Value(&in.Due).
				Validate(validDay),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEditForm edits title and description only; the due date moves through
// rescheduling.
func NewEditForm(in *TaskInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(notBlank("title")),
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewHabitForm(in *HabitInput) *huh.Form {
	days := make([]huh.Option[time.Weekday], 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, huh.NewOption(d.String(), d))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&in.Title).
				Validate(notBlank("habit name")),
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
			huh.NewMultiSelect[time.Weekday]().
				Title("Days").
				Description("Select none for every day").
				Options(days...).
				Value(&in.Days),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewPlanForm(in *PlanInput, day string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Plan for " + day).
				Description("One task per line").
				Value(&in.Tasks).
				Validate(func(s string) error {
					if len((PlanInput{Tasks: s}).Titles()) == 0 {
						return fmt.Errorf("add at least one task")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
