package profiler

import "time"

// Clock is a monotonic high-resolution time source.
type Clock interface {
	// Now returns the time since an arbitrary fixed origin.
	//
	// Returns:
	//   - time.Duration: the current reading
	Now() time.Duration
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Duration

// Now calls f().
func (f ClockFunc) Now() time.Duration {
	return f()
}

// MonotonicClock reads the process monotonic clock, measured from its creation.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock creates a Clock whose origin is the moment of the call.
//
// Returns:
//   - *MonotonicClock: the clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}

// FrameTimer samples a Clock once per frame and derives the elapsed time since start and the
// delta since the previous frame. It owns the previous timestamp; nothing else does.
type FrameTimer struct {
	clock    Clock
	maxDelta time.Duration

	start   time.Duration
	last    time.Duration
	elapsed time.Duration
	delta   time.Duration
	frames  uint64
}

// NewFrameTimer creates a FrameTimer and takes its first reading as the start time.
//
// Parameters:
//   - clock: the time source
//   - options: a variadic list of FrameTimerBuilderOption functions
//
// Returns:
//   - *FrameTimer: the timer
func NewFrameTimer(clock Clock, options ...FrameTimerBuilderOption) *FrameTimer {
	t := &FrameTimer{clock: clock}
	for _, opt := range options {
		opt(t)
	}
	t.start = clock.Now()
	t.last = t.start
	return t
}

// Tick samples the clock once for the new frame.
//
// The delta is clamped to the configured maximum so a stall (debugger break, window drag) does
// not turn into one huge simulation step. The elapsed time is always the true reading.
//
// Returns:
//   - time.Duration: the elapsed time since the timer started
//   - time.Duration: the (possibly clamped) delta since the previous tick
func (t *FrameTimer) Tick() (time.Duration, time.Duration) {
	now := t.clock.Now()
	t.delta = max(now-t.last, 0)
	if t.maxDelta > 0 && t.delta > t.maxDelta {
		t.delta = t.maxDelta
	}
	t.last = now
	t.elapsed = now - t.start
	t.frames++
	return t.elapsed, t.delta
}

// Elapsed returns the elapsed time at the last tick.
func (t *FrameTimer) Elapsed() time.Duration {
	return t.elapsed
}

// Delta returns the delta computed at the last tick.
func (t *FrameTimer) Delta() time.Duration {
	return t.delta
}

// ElapsedSeconds returns Elapsed in seconds, as shaders consume it.
func (t *FrameTimer) ElapsedSeconds() float32 {
	return float32(t.elapsed.Seconds())
}

// DeltaSeconds returns Delta in seconds.
func (t *FrameTimer) DeltaSeconds() float32 {
	return float32(t.delta.Seconds())
}

// Frames returns the number of ticks so far.
func (t *FrameTimer) Frames() uint64 {
	return t.frames
}

// MaxDelta returns the delta clamp, 0 if disabled.
func (t *FrameTimer) MaxDelta() time.Duration {
	return t.maxDelta
}
