package app

import (
	"context"
	"time"
)

// FixedStep paces simulation updates at a steady interval. The TUI polls
// ShouldStep every frame while the plain loop blocks in Wait.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires every step. The first call
// to ShouldStep fires immediately.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. Non-positive values fire on every call.
func (f *FixedStep) SetStep(step time.Duration) {
	if step < 0 {
		step = 0
	}
	f.step = step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Cap the backlog at one pending tick.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Wait blocks for one interval or until ctx is cancelled.
func (f *FixedStep) Wait(ctx context.Context) error {
	if f.step <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.step)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
