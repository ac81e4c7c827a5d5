package habits

import (
	"fmt"
	"text/tabwriter"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Create a habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its pending instances."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks." default:"1"`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `short:"d" help:"Optional description."`
	Days        string `short:"w" help:"Comma-separated weekdays (e.g. mon,wed,fri). Omit for daily."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	freq, err := cli.ParseFrequency(c.Days)
	if err != nil {
		return err
	}
	if err := ctx.Open(); err != nil {
		return err
	}

	habit, err := ctx.Engine.CreateHabit(models.HabitSpec{
		Title:       c.Title,
		Description: c.Description,
		Frequency:   freq,
	})
	if err != nil {
		return err
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Added habit %q (%s)\n", cli.SuccessStyle.Render("✓"), habit.Title, cli.FormatFrequency(habit.Frequency))
	return nil
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit ID, ID prefix or title."`
	Title       *string `short:"t" help:"New title."`
	Description *string `short:"d" help:"New description."`
	Days        *string `short:"w" help:"New weekdays, or 'daily'."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	spec := models.HabitSpec{
		Title:       habit.Title,
		Description: habit.Description,
		Frequency:   habit.Frequency,
	}
	if c.Title != nil {
		spec.Title = *c.Title
	}
	if c.Description != nil {
		spec.Description = *c.Description
	}
	if c.Days != nil {
		if spec.Frequency, err = cli.ParseFrequency(*c.Days); err != nil {
			return err
		}
	}

	updated, _, err := ctx.Engine.UpdateHabit(habit.ID, spec)
	if err != nil {
		return err
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Updated habit %q (%s)\n", cli.SuccessStyle.Render("✓"), updated.Title, cli.FormatFrequency(updated.Frequency))
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID, ID prefix or title."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if !ctx.Engine.DeleteHabit(habit.ID) {
		return fmt.Errorf("habit %q disappeared before it could be deleted", habit.Title)
	}
	if err := ctx.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s Deleted habit %q\n", cli.SuccessStyle.Render("✓"), habit.Title)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	habits := ctx.Engine.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(ctx.Out, "No habits yet. Add one with 'dayboard habit add'.")
		return nil
	}

	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFREQUENCY\tSTREAK\tLAST DONE")
	for _, h := range habits {
		last := h.LastCompletedDate
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", cli.ShortID(h.ID), h.Title, cli.FormatFrequency(h.Frequency), h.Streak, last)
	}
	return w.Flush()
}
