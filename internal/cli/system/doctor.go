package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/keyring"
	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/storage"
	"github.com/julianstephens/dayboard/internal/utils"
	"github.com/julianstephens/dayboard/internal/validation"
)

var errSkipped = errors.New("skipped")

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(ctx *cli.Context, snap *models.Snapshot) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Day bookkeeping", needsDB: true, run: checkLastProcessedDate},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Keyring", warnOnly: true, run: checkKeyring},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	var snap *models.Snapshot
	if err := ctx.Store.Load(); err != nil {
		report(ctx, "Storage reachable", err, false)
		hasError = true
	} else if loaded, err := ctx.Store.LoadAll(); err != nil {
		report(ctx, "Storage reachable", err, false)
		hasError = true
	} else {
		report(ctx, "Storage reachable", nil, false)
		snap = &loaded
	}

	for _, c := range checks {
		if c.needsDB && snap == nil {
			report(ctx, c.name, errSkipped, false)
			continue
		}
		err := c.run(ctx, snap)
		report(ctx, c.name, err, c.warnOnly)
		if err != nil && !errors.Is(err, errSkipped) && !c.warnOnly {
			hasError = true
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func report(ctx *cli.Context, name string, err error, warnOnly bool) {
	switch {
	case err == nil:
		fmt.Fprintf(ctx.Out, "%s %s: OK\n", cli.SuccessStyle.Render("✓"), name)
	case errors.Is(err, errSkipped):
		fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED\n", name)
	case warnOnly:
		fmt.Fprintf(ctx.Out, "%s %s: WARNING\n%s\n", cli.WarnStyle.Render("⚠"), name, cli.Indent(err.Error(), "   "))
	default:
		fmt.Fprintf(ctx.Out, "%s %s: FAIL\n%s\n", cli.ErrorStyle.Render("✗"), name, cli.Indent(err.Error(), "   "))
	}
}

func checkSchemaVersion(ctx *cli.Context, _ *models.Snapshot) error {
	reporter, ok := ctx.Store.(storage.SchemaReporter)
	if !ok {
		return errSkipped
	}
	current, latest, err := reporter.SchemaStatus()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema at version %d, expected %d", current, latest)
	}
	return nil
}

func checkValidation(_ *cli.Context, snap *models.Snapshot) error {
	result := validation.Records(snap.Tasks, snap.Habits)
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkLastProcessedDate(ctx *cli.Context, snap *models.Snapshot) error {
	last := snap.Settings.LastProcessedDate
	if last == "" {
		return nil
	}
	if !utils.IsDayKey(last) {
		return fmt.Errorf("last processed date %q is not a valid day", last)
	}
	if today := utils.Today(ctx.Now()); last > today {
		return fmt.Errorf("last processed date %s is after today (%s); check the system clock", last, today)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, _ *models.Snapshot) error {
	if _, err := utils.LoadLocation(ctx.Config.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", ctx.Config.Timezone, err)
	}
	if ctx.Now().Year() < 2020 {
		return errors.New("system clock appears to be wrong")
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context, _ *models.Snapshot) error {
	mgr, ok := ctx.Backups()
	if !ok {
		return errSkipped
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups in %s (run 'dayboard backup create')", mgr.Dir())
	}
	if age := ctx.Now().Sub(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("newest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkKeyring(ctx *cli.Context, _ *models.Snapshot) error {
	if ctx.Source != keyring.SourceKeyring {
		return errSkipped
	}
	if !ctx.Vault.Available() {
		return errors.New("storage comes from the keyring but the keyring is unavailable")
	}
	return nil
}
