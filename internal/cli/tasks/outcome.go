package tasks

import (
	"fmt"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/models"
)

// action applies one engine transition to a resolved task.
type action func(ctx *cli.Context, task models.Task) (models.Task, bool)

func runAction(ctx *cli.Context, ref string, act action, verb, noop string) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	task, err := ctx.ResolveTask(ref)
	if err != nil {
		return err
	}

	updated, ok := act(ctx, task)
	if !ok {
		fmt.Fprintf(ctx.Out, "%s %q %s\n", cli.WarnStyle.Render("!"), task.Title, noop)
		return nil
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s %s %q\n", cli.SuccessStyle.Render("✓"), verb, updated.Title)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	return runAction(ctx, c.ID, func(ctx *cli.Context, t models.Task) (models.Task, bool) {
		done, ok := ctx.Engine.CompleteTask(t.ID, t.DueDate)
		if ok && done.IsHabitInstance() {
			if h, found := ctx.Engine.FindHabit(done.HabitID); found {
				fmt.Fprintf(ctx.Out, "  streak: %d\n", h.Streak)
			}
		}
		return done, ok
	}, "Completed", "is not pending")
}

type TaskClearCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskClearCmd) Run(ctx *cli.Context) error {
	return runAction(ctx, c.ID, func(ctx *cli.Context, t models.Task) (models.Task, bool) {
		return ctx.Engine.ClearWithoutCredit(t.ID, t.DueDate)
	}, "Cleared", "is not pending")
}

type TaskDiscardCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskDiscardCmd) Run(ctx *cli.Context) error {
	return runAction(ctx, c.ID, func(ctx *cli.Context, t models.Task) (models.Task, bool) {
		return ctx.Engine.DiscardTask(t.ID, t.DueDate)
	}, "Discarded", "is not pending")
}

type TaskRestoreCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskRestoreCmd) Run(ctx *cli.Context) error {
	return runAction(ctx, c.ID, func(ctx *cli.Context, t models.Task) (models.Task, bool) {
		return ctx.Engine.RestoreTask(t.ID, t.DueDate)
	}, "Restored", "could not be restored")
}

type TaskRescheduleCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
	To string `arg:"" optional:"" help:"New date (YYYY-MM-DD, today, tomorrow or +N). Defaults to today."`
}

func (c *TaskRescheduleCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	to, err := cli.ParseDate(c.To, ctx.Engine.Now())
	if err != nil {
		return err
	}

	moved, ok, err := ctx.Engine.RescheduleTask(task.ID, task.DueDate, to)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(ctx.Out, "%s Nothing to move: only pending standalone tasks can be rescheduled, to a different day\n", cli.WarnStyle.Render("!"))
		return nil
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Moved %q to %s\n", cli.SuccessStyle.Render("✓"), moved.Title, moved.DueDate)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	if !ctx.Engine.DeleteTask(task.ID, task.DueDate) {
		return fmt.Errorf("task %s disappeared before it could be deleted", cli.ShortID(task.ID))
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Deleted %q\n", cli.SuccessStyle.Render("✓"), task.Title)
	return nil
}
