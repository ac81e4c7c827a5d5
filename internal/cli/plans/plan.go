package plans

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/tui/forms"
	"github.com/julianstephens/dayboard/internal/utils"
)

// PlanCmd adds tasks for an upcoming day, by default tomorrow. Submitting a
// plan also silences the evening reminder.
type PlanCmd struct {
	Day  string   `short:"D" help:"Day to plan (YYYY-MM-DD, today, tomorrow or +N). Defaults to tomorrow."`
	Task []string `short:"t" help:"Task title; repeat for several. Omit to open the form."`
}

// runForm is replaced in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

func (c *PlanCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	now := ctx.Engine.Now()

	day, err := cli.ParseDate(c.Day, now)
	if err != nil {
		return err
	}
	if day == "" {
		day = utils.Tomorrow(now)
	}

	var titles []string
	for _, t := range c.Task {
		titles = append(titles, forms.PlanInput{Tasks: t}.Titles()...)
	}
	if len(titles) == 0 {
		in := &forms.PlanInput{}
		if err := runForm(forms.NewPlanForm(in, day)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(ctx.Out, "Planning cancelled.")
				return nil
			}
			return err
		}
		titles = in.Titles()
	}

	created, err := addAll(ctx, day, titles)
	if err != nil {
		return err
	}
	ctx.NewReminder().Submit(ctx.Engine.Now())
	if err := ctx.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "%s Planned %d task(s) for %s\n", cli.SuccessStyle.Render("✓"), len(created), day)
	for _, t := range created {
		fmt.Fprintf(ctx.Out, "  %s %s\n", cli.ShortID(t.ID), t.Title)
	}
	return nil
}

func addAll(ctx *cli.Context, day string, titles []string) ([]models.Task, error) {
	created := make([]models.Task, 0, len(titles))
	for _, title := range titles {
		task, err := ctx.Engine.CreateTask(models.NewTask{Title: title, DueDate: day})
		if err != nil {
			return created, fmt.Errorf("failed to add %q: %w", title, err)
		}
		created = append(created, task)
	}
	return created, nil
}
