package plans

import (
	"testing"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/dayboard/internal/cli/clitest"
)

func TestPlanWithFlagsAddsTomorrowAndSilencesReminder(t *testing.T) {
	env := clitest.New(t)
	env.Clock = time.Date(2026, 3, 10, 21, 5, 0, 0, time.UTC)

	cmd := &PlanCmd{Task: []string{"Pack gym bag", "  ", "- Email Sam"}}
	require.NoError(t, cmd.Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "Planned 2 task(s) for 2026-03-11")

	ctx := env.Context(t)
	require.NoError(t, ctx.Open())
	tasks := ctx.Engine.Tasks()
	require.Len(t, tasks, 2)
	var titles []string
	for _, task := range tasks {
		assert.Equal(t, "2026-03-11", task.DueDate)
		titles = append(titles, task.Title)
	}
	assert.ElementsMatch(t, []string{"Pack gym bag", "Email Sam"}, titles)
	assert.False(t, ctx.NewReminder().Check(ctx.Engine.Now()), "submitting starts the cooldown")
}

func TestPlanExplicitDay(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&PlanCmd{Day: "+2", Task: []string{"Dentist"}}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "2026-03-12")
}

func TestPlanFormCancelled(t *testing.T) {
	old := runForm
	runForm = func(*huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runForm = old })

	env := clitest.New(t)
	require.NoError(t, (&PlanCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "Planning cancelled.")

	ctx := env.Context(t)
	require.NoError(t, ctx.Open())
	assert.Empty(t, ctx.Engine.Tasks())
}

func TestRemindStatusAndDismiss(t *testing.T) {
	env := clitest.New(t)

	require.NoError(t, (&RemindStatusCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "not due before 21:00")

	env.Clock = time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	env.Out.Reset()
	require.NoError(t, (&RemindStatusCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "Time to plan tomorrow")

	env.Out.Reset()
	require.NoError(t, (&RemindDismissCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "dismissed until 21:30")

	env.Clock = env.Clock.Add(10 * time.Minute)
	env.Out.Reset()
	require.NoError(t, (&RemindStatusCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "snoozed until 21:30")

	env.Clock = env.Clock.Add(20 * time.Minute)
	env.Out.Reset()
	require.NoError(t, (&RemindStatusCmd{}).Run(env.Context(t)))
	assert.Contains(t, env.Out.String(), "Time to plan tomorrow")
}
