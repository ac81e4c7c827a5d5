package reminder

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestCheckHourThreshold(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"afternoon", at(15, 0), false},
		{"one minute before", at(20, 59), false},
		{"exactly nine", at(21, 0), true},
		{"late night", at(23, 45), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger := New(DefaultConfig(), nil)
			assert.Equal(t, tt.want, trigger.Check(tt.now))
		})
	}
}

func TestDismissStartsCooldown(t *testing.T) {
	var persisted []time.Time
	cfg := DefaultConfig()
	cfg.OnDismiss = func(ts time.Time) { persisted = append(persisted, ts) }
	trigger := New(cfg, nil)

	require.True(t, trigger.Check(at(21, 0)))
	trigger.Dismiss(at(21, 5))

	assert.False(t, trigger.Shown())
	assert.False(t, trigger.Check(at(21, 20)), "inside cooldown")
	assert.False(t, trigger.Check(at(21, 34)), "one minute short")
	assert.True(t, trigger.Check(at(21, 35)), "cooldown elapsed")

	require.Len(t, persisted, 1)
	assert.Equal(t, at(21, 5), persisted[0])
	assert.Equal(t, at(21, 5), *trigger.DismissedAt())
}

func TestSubmitHidesAndStartsCooldown(t *testing.T) {
	trigger := New(DefaultConfig(), nil)
	require.True(t, trigger.Check(at(22, 0)))

	trigger.Submit(at(22, 1))
	assert.False(t, trigger.Shown())
	assert.False(t, trigger.Check(at(22, 2)))
}

func TestRestoredDismissalIsHonoured(t *testing.T) {
	dismissed := at(21, 50)
	trigger := New(DefaultConfig(), &dismissed)

	assert.False(t, trigger.Check(at(22, 0)))
	assert.True(t, trigger.Due(at(22, 20)))
}

func TestShownStaysUntilHidden(t *testing.T) {
	trigger := New(DefaultConfig(), nil)
	require.True(t, trigger.Check(at(21, 0)))

	// predicate no longer holds after midnight, but nothing hid it
	assert.True(t, trigger.Check(at(21, 0).Add(4*time.Hour)))
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	trigger := New(Config{Hour: 42, Cooldown: -time.Minute}, nil)
	assert.False(t, trigger.Check(at(20, 0)))
	assert.True(t, trigger.Check(at(21, 0)))
}

func TestRunPollsUntilCancelled(t *testing.T) {
	var mu sync.Mutex
	now := at(20, 0)
	cfg := DefaultConfig()
	cfg.Now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	trigger := New(cfg, nil)

	var shows atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		trigger.Run(ctx, 5*time.Millisecond, func() { shows.Add(1) })
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), shows.Load(), "not due before nine")

	mu.Lock()
	now = at(21, 1)
	mu.Unlock()

	assert.Eventually(t, func() bool { return shows.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), shows.Load(), "onShow fires once per transition")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
