package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now += d }

func TestFrameTimer_ElapsedAndDelta(t *testing.T) {
	clock := &fakeClock{now: 5 * time.Second}
	timer := NewFrameTimer(clock)

	clock.advance(16 * time.Millisecond)
	elapsed, delta := timer.Tick()
	assert.Equal(t, 16*time.Millisecond, elapsed)
	assert.Equal(t, 16*time.Millisecond, delta)

	clock.advance(20 * time.Millisecond)
	elapsed, delta = timer.Tick()
	assert.Equal(t, 36*time.Millisecond, elapsed)
	assert.Equal(t, 20*time.Millisecond, delta)
	assert.Equal(t, uint64(2), timer.Frames())
	assert.InDelta(t, 0.036, timer.ElapsedSeconds(), 1e-6)
	assert.InDelta(t, 0.020, timer.DeltaSeconds(), 1e-6)
}

func TestFrameTimer_SameReadingGivesZeroDelta(t *testing.T) {
	clock := &fakeClock{}
	timer := NewFrameTimer(clock)

	_, delta := timer.Tick()
	assert.Zero(t, delta)
	assert.Zero(t, timer.Elapsed())
}

func TestFrameTimer_MaxDelta(t *testing.T) {
	tests := []struct {
		name      string
		maxDelta  time.Duration
		stall     time.Duration
		wantDelta time.Duration
	}{
		{"clamped", 250 * time.Millisecond, 3 * time.Second, 250 * time.Millisecond},
		{"under clamp", 250 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond},
		{"disabled", 0, 3 * time.Second, 3 * time.Second},
		{"negative disables", -time.Second, 3 * time.Second, 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{}
			timer := NewFrameTimer(clock, WithMaxDelta(tt.maxDelta))

			clock.advance(tt.stall)
			elapsed, delta := timer.Tick()
			assert.Equal(t, tt.wantDelta, delta)
			assert.Equal(t, tt.stall, elapsed, "elapsed is never clamped")
		})
	}
}

func TestFrameTimer_ClockFunc(t *testing.T) {
	readings := []time.Duration{0, time.Second}
	i := 0
	timer := NewFrameTimer(ClockFunc(func() time.Duration {
		r := readings[i]
		i++
		return r
	}))

	elapsed, delta := timer.Tick()
	assert.Equal(t, time.Second, elapsed)
	assert.Equal(t, time.Second, delta)
}

func TestMonotonicClock_NeverGoesBackwards(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
}

func TestProfiler_TickLogsAtInterval(t *testing.T) {
	clock := &fakeClock{}
	p := NewProfiler(clock, WithUpdateInterval(time.Second))

	for range 59 {
		clock.advance(10 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	clock.advance(410 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.InDelta(t, 60, p.FPS(), 1e-9)

	clock.advance(10 * time.Millisecond)
	assert.False(t, p.Tick())
}
