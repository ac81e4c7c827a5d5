// Package reminder decides when to show the evening "plan tomorrow" prompt.
//
// The trigger has two states. It moves from hidden to shown once the local
// hour reaches Config.Hour and the last dismissal (if any) is at least
// Config.Cooldown old. It moves back to hidden on Dismiss or Submit.
package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/dayboard/internal/constants"
	"github.com/julianstephens/dayboard/internal/logger"
)

type Config struct {
	Hour     int
	Cooldown time.Duration
	// Now returns the local time; defaults to time.Now.
	Now func() time.Time
	// OnDismiss persists the cooldown start. Optional.
	OnDismiss func(at time.Time)
}

func DefaultConfig() Config {
	return Config{
		Hour:     constants.DefaultReminderHour,
		Cooldown: constants.DefaultReminderCooldown,
	}
}

type Trigger struct {
	mu          sync.Mutex
	cfg         Config
	shown       bool
	dismissedAt *time.Time
}

// New builds a hidden trigger. dismissedAt restores a persisted cooldown.
func New(cfg Config, dismissedAt *time.Time) *Trigger {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Hour < 0 || cfg.Hour > 23 {
		cfg.Hour = constants.DefaultReminderHour
	}
	if cfg.Cooldown < 0 {
		cfg.Cooldown = constants.DefaultReminderCooldown
	}
	t := &Trigger{cfg: cfg}
	if dismissedAt != nil {
		at := *dismissedAt
		t.dismissedAt = &at
	}
	return t
}

// Due reports whether the time predicate holds at now, regardless of state.
func (t *Trigger) Due(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.due(now)
}

func (t *Trigger) due(now time.Time) bool {
	if now.Hour() < t.cfg.Hour {
		return false
	}
	return t.dismissedAt == nil || now.Sub(*t.dismissedAt) >= t.cfg.Cooldown
}

// Check evaluates the predicate at now, showing the reminder if it holds,
// and returns whether the reminder is shown.
func (t *Trigger) Check(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.shown && t.due(now) {
		t.shown = true
		logger.Debug("Reminder shown", "at", now.Format(time.RFC3339))
	}
	return t.shown
}

func (t *Trigger) Shown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shown
}

// DismissedAt returns the start of the current cooldown, if any.
func (t *Trigger) DismissedAt() *time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dismissedAt == nil {
		return nil
	}
	at := *t.dismissedAt
	return &at
}

// Dismiss hides the reminder and starts the cooldown at now.
func (t *Trigger) Dismiss(now time.Time) {
	t.hide(now, "dismissed")
}

// Submit hides the reminder after the planning action succeeded. It starts
// the cooldown too, so the prompt does not return on the next poll.
func (t *Trigger) Submit(now time.Time) {
	t.hide(now, "submitted")
}

func (t *Trigger) hide(now time.Time, reason string) {
	t.mu.Lock()
	t.shown = false
	at := now
	t.dismissedAt = &at
	onDismiss := t.cfg.OnDismiss
	t.mu.Unlock()

	logger.Debug("Reminder hidden", "reason", reason)
	if onDismiss != nil {
		onDismiss(now)
	}
}

// Run checks once immediately and then every interval until ctx is done.
// onShow is called each time the reminder goes from hidden to shown.
func (t *Trigger) Run(ctx context.Context, interval time.Duration, onShow func()) {
	if interval <= 0 {
		interval = constants.DefaultReminderPoll
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.poll(onShow)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.poll(onShow)
		}
	}
}

func (t *Trigger) poll(onShow func()) {
	wasShown := t.Shown()
	if t.Check(t.cfg.Now()) && !wasShown && onShow != nil {
		onShow()
	}
}
