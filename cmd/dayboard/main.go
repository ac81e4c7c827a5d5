package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/cli/backups"
	"github.com/julianstephens/dayboard/internal/cli/habits"
	"github.com/julianstephens/dayboard/internal/cli/plans"
	"github.com/julianstephens/dayboard/internal/cli/system"
	"github.com/julianstephens/dayboard/internal/cli/tasks"
	"github.com/julianstephens/dayboard/internal/constants"
	apperrors "github.com/julianstephens/dayboard/internal/errors"
)

type CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"${config}"`
	Storage  string `help:"SQLite path, .json path or PostgreSQL URL. Overrides the config file, env and keyring. PostgreSQL URLs must not embed a password."`
	Timezone string `help:"IANA timezone that defines the day boundary (default from config)."`
	Debug    bool   `help:"Enable debug logging."`

	Init   system.InitCmd    `cmd:"" help:"Initialize dayboard storage."`
	Doctor system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd     `cmd:"" help:"Launch the interactive board." default:"1"`
	Board  tasks.TaskListCmd `cmd:"" help:"Print the board."`
	Task   struct {
		Add        tasks.TaskAddCmd        `cmd:"" help:"Add a task."`
		Edit       tasks.TaskEditCmd       `cmd:"" help:"Edit a task's title or description."`
		Done       tasks.TaskDoneCmd       `cmd:"" help:"Complete a task."`
		Clear      tasks.TaskClearCmd      `cmd:"" help:"Complete a task without streak credit."`
		Discard    tasks.TaskDiscardCmd    `cmd:"" help:"Discard a task."`
		Restore    tasks.TaskRestoreCmd    `cmd:"" help:"Return a completed or discarded task to pending."`
		Reschedule tasks.TaskRescheduleCmd `cmd:"" help:"Move a pending task to another day."`
		Delete     tasks.TaskDeleteCmd     `cmd:"" help:"Delete a task."`
		List       tasks.TaskListCmd       `cmd:"" help:"List tasks by bucket." default:"1"`
	} `cmd:"" help:"Manage tasks."`
	Habit    habits.HabitCmd   `cmd:"" help:"Manage habits."`
	Plan     plans.PlanCmd     `cmd:"" help:"Plan tomorrow's tasks."`
	Remind   plans.RemindCmd   `cmd:"" help:"Check, dismiss or watch the evening planning reminder."`
	Backup   backups.BackupCmd `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugCmd cli.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

// skipAutoBackup lists commands that must not trigger the daily backup.
var skipAutoBackup = map[string]bool{
	"init":    true,
	"doctor":  true,
	"tui":     true,
	"backup":  true,
	"keyring": true,
	"debug":   true,
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Daily task board with habits, streaks and an evening planning reminder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigFile,
		},
	}
}

// execute builds the shared command context from the global flags and runs
// the selected command. clock and out are overridable for tests.
func execute(kctx *kong.Context, flags *CLI, clock func() time.Time, out io.Writer) error {
	command := strings.Fields(kctx.Command())[0]
	appCtx, err := cli.NewContext(cli.Options{
		ConfigPath: flags.Config,
		Storage:    flags.Storage,
		Timezone:   flags.Timezone,
		Debug:      flags.Debug,
		Quiet:      command == "tui",
		Clock:      clock,
	})
	if err != nil {
		return err
	}
	if out != nil {
		appCtx.Out = out
	}

	if !skipAutoBackup[command] {
		appCtx.PerformAutomaticBackup()
	}

	err = kctx.Run(appCtx)
	if closeErr := appCtx.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func main() {
	var flags CLI
	parser, err := kong.New(&flags, options()...)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	apperrors.Fatal(execute(kctx, &flags, nil, nil))
}
