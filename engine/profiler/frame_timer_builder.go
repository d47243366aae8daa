package profiler

import "time"

// FrameTimerBuilderOption is a functional option used to configure a FrameTimer during construction.
type FrameTimerBuilderOption func(*FrameTimer)

// WithMaxDelta clamps the per-frame delta to d. Zero or negative disables clamping.
//
// Parameters:
//   - d: the largest delta Tick will report
//
// Returns:
//   - FrameTimerBuilderOption: a function that sets the clamp
func WithMaxDelta(d time.Duration) FrameTimerBuilderOption {
	return func(t *FrameTimer) {
		t.maxDelta = max(d, 0)
	}
}
