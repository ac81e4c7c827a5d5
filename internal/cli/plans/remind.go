package plans

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/constants"
	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/notifier"
)

const reminderMessage = "Time to plan tomorrow: run 'dayboard plan'"

type RemindCmd struct {
	Status  RemindStatusCmd  `cmd:"" help:"Show whether the planning reminder is due." default:"1"`
	Dismiss RemindDismissCmd `cmd:"" help:"Dismiss the reminder and start the cooldown."`
	Watch   RemindWatchCmd   `cmd:"" help:"Poll in the foreground and announce the reminder when it is due."`
}

type RemindStatusCmd struct{}

func (c *RemindStatusCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	now := ctx.Engine.Now()
	trigger := ctx.NewReminder()

	if trigger.Check(now) {
		fmt.Fprintf(ctx.Out, "%s %s\n", cli.WarnStyle.Render("●"), reminderMessage)
		return nil
	}

	hour := ctx.Config.Reminder.Hour
	if now.Hour() < hour {
		fmt.Fprintf(ctx.Out, "Reminder not due before %02d:00\n", hour)
		return nil
	}
	if at := trigger.DismissedAt(); at != nil {
		until := at.Add(ctx.Config.ReminderCooldown()).In(now.Location())
		fmt.Fprintf(ctx.Out, "Reminder snoozed until %s\n", until.Format(constants.TimeFormat))
	}
	return nil
}

type RemindDismissCmd struct{}

func (c *RemindDismissCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	now := ctx.Engine.Now()
	ctx.NewReminder().Dismiss(now)
	if err := ctx.Flush(); err != nil {
		return err
	}
	until := now.Add(ctx.Config.ReminderCooldown())
	fmt.Fprintf(ctx.Out, "%s Reminder dismissed until %s\n", cli.SuccessStyle.Render("✓"), until.Format(constants.TimeFormat))
	return nil
}

type RemindWatchCmd struct {
	Notify bool `short:"n" help:"Also send a desktop notification through dayboard-tray."`
	Repeat bool `short:"r" help:"Re-announce after each cooldown instead of once."`
}

func (c *RemindWatchCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trigger := ctx.NewReminder()
	n := notifier.New()
	poll := ctx.Config.ReminderPoll()

	// Keep the day rolling over while the watcher runs for days.
	go func() {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				ctx.Engine.Tick()
			}
		}
	}()

	fmt.Fprintf(ctx.Out, "Watching for the %02d:00 reminder (Ctrl+C to stop)\n", ctx.Config.Reminder.Hour)
	trigger.Run(runCtx, poll, func() {
		now := ctx.Engine.Now()
		fmt.Fprintf(ctx.Out, "[%s] %s\n", now.Format(constants.TimeFormat), reminderMessage)
		if c.Notify {
			if err := n.Notify(runCtx, reminderMessage); err != nil {
				logger.Warn("Reminder notification failed", "error", err)
			}
		}
		if c.Repeat {
			trigger.Dismiss(now)
		}
	})
	return nil
}
