package tasks

import (
	"fmt"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/models"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Optional description."`
	Due         string `short:"u" help:"Due date (YYYY-MM-DD, today, tomorrow or +N). Defaults to today."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	due, err := cli.ParseDate(c.Due, ctx.Engine.Now())
	if err != nil {
		return err
	}

	task, err := ctx.Engine.CreateTask(models.NewTask{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     due,
	})
	if err != nil {
		return err
	}
	if err := ctx.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "%s Added task %s for %s\n", cli.SuccessStyle.Render("✓"), cli.ShortID(task.ID), task.DueDate)
	return nil
}
