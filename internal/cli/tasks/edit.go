package tasks

import (
	"fmt"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/models"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID or ID prefix."`
	Title       *string `short:"t" help:"New title."`
	Description *string `short:"d" help:"New description (empty string clears it)."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}

	patch := models.TaskPatch{Title: task.Title, Description: task.Description}
	if c.Title != nil {
		patch.Title = *c.Title
	}
	if c.Description != nil {
		patch.Description = *c.Description
	}

	updated, _, err := ctx.Engine.UpdateTask(task.ID, task.DueDate, patch)
	if err != nil {
		return err
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Updated %q\n", cli.SuccessStyle.Render("✓"), updated.Title)
	return nil
}
