package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/dayboard/internal/models"
	"github.com/julianstephens/dayboard/internal/storage"
)

type DebugCmd struct {
	Path DebugPathCmd `cmd:"" help:"Show resolved config and storage locations."`
	Dump DebugDumpCmd `cmd:"" help:"Dump all records as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"config":  ctx.ConfigPath,
		"backend": string(storage.Detect(ctx.Target)),
		"source":  string(ctx.Source),
		"storage": ctx.Store.GetConfigPath(),
	}
	return writeJSON(ctx, output)
}

type DebugDumpCmd struct {
	Raw bool `help:"Dump the stored snapshot without running the day transition."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	if cmd.Raw {
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		snap, err := ctx.Store.LoadAll()
		if err != nil {
			return err
		}
		return writeJSON(ctx, snap)
	}

	if err := ctx.Open(); err != nil {
		return err
	}
	return writeJSON(ctx, models.Snapshot{
		Tasks:    ctx.Engine.Tasks(),
		Habits:   ctx.Engine.Habits(),
		Settings: ctx.Engine.Settings(),
	})
}

func writeJSON(ctx *Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(ctx.Out, string(data))
	return err
}
