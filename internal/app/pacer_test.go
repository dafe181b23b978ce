package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedStepShouldStep(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	f := NewFixedStep(100 * time.Millisecond)
	f.now = clock.now

	assert.True(t, f.ShouldStep(), "first call fires immediately")
	assert.False(t, f.ShouldStep())

	clock.t = clock.t.Add(60 * time.Millisecond)
	assert.False(t, f.ShouldStep())
	clock.t = clock.t.Add(50 * time.Millisecond)
	assert.True(t, f.ShouldStep())
	assert.False(t, f.ShouldStep())
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	f := NewFixedStep(10 * time.Millisecond)
	f.now = clock.now
	f.ShouldStep()

	clock.t = clock.t.Add(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if f.ShouldStep() {
			fired++
		}
	}
	assert.Equal(t, 2, fired)
}

func TestFixedStepWait(t *testing.T) {
	f := NewFixedStep(time.Millisecond)
	assert.NoError(t, f.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewFixedStep(time.Hour).Wait(ctx), context.Canceled)
	assert.ErrorIs(t, NewFixedStep(0).Wait(ctx), context.Canceled)
	assert.NoError(t, NewFixedStep(0).Wait(context.Background()))
}
