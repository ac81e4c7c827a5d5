package cli_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/dayboard/internal/cli"
	"github.com/julianstephens/dayboard/internal/cli/clitest"
	"github.com/julianstephens/dayboard/internal/models"
)

func TestDebugPath(t *testing.T) {
	env := clitest.New(t)
	env.Out.Reset()

	ctx := env.Context(t)
	require.NoError(t, (&cli.DebugPathCmd{}).Run(ctx))

	var got map[string]string
	require.NoError(t, json.Unmarshal(env.Out.Bytes(), &got))
	assert.Equal(t, ctx.ConfigPath, got["config"])
	assert.Equal(t, "json", got["backend"])
	assert.Equal(t, env.Storage, got["storage"])
}

func TestDebugDumpRawSkipsDayTransition(t *testing.T) {
	env := clitest.New(t)

	ctx := env.Context(t)
	require.NoError(t, ctx.Open())
	_, err := ctx.Engine.CreateTask(models.NewTask{Title: "Buy milk"})
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	env.Clock = env.Clock.Add(24 * time.Hour)

	env.Out.Reset()
	require.NoError(t, (&cli.DebugDumpCmd{Raw: true}).Run(env.Context(t)))
	var raw models.Snapshot
	require.NoError(t, json.Unmarshal(env.Out.Bytes(), &raw))
	assert.Equal(t, "2026-03-10", raw.Settings.LastProcessedDate)
	require.Len(t, raw.Tasks, 1)
	assert.Equal(t, "Buy milk", raw.Tasks[0].Title)

	env.Out.Reset()
	require.NoError(t, (&cli.DebugDumpCmd{}).Run(env.Context(t)))
	var opened models.Snapshot
	require.NoError(t, json.Unmarshal(env.Out.Bytes(), &opened))
	assert.Equal(t, "2026-03-11", opened.Settings.LastProcessedDate)
}
