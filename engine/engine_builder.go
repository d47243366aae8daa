package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-params/engine/demo"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/profiler"
	"github.com/Carmen-Shannon/oxy-params/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow makes the engine poll w for events, read its clock, follow its framebuffer size
// and close it at teardown.
//
// Parameters:
//   - w: a created Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
		e.events = w
		e.clock = w.Clock()
	}
}

// WithEventSource sets the event pump polled at the start of each frame. Without one (and
// without a window) the engine runs headless until the frame limit or Quit.
//
// Parameters:
//   - src: the event source
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithEventSource(src EventSource) EngineBuilderOption {
	return func(e *engine) {
		e.events = src
	}
}

// WithClock sets the frame clock. Defaults to the process monotonic clock.
//
// Parameters:
//   - c: the clock
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(c profiler.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithMaxDelta opts into a frame delta clamp. Zero disables clamping, which is the default.
//
// Parameters:
//   - d: the largest delta a frame reports
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDelta(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.maxDelta = d
	}
}

// WithFrameLimit stops the loop after n frames. Zero means no limit.
//
// Parameters:
//   - n: the number of frames to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(n uint64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = n
	}
}

// WithPass replaces the default main pass.
//
// Parameters:
//   - p: the pass prepared every frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPass(p *pass.Pass) EngineBuilderOption {
	return func(e *engine) {
		e.pass = p
	}
}

// WithFrameCallback registers a function called after each frame is presented.
//
// Parameters:
//   - callback: function receiving the frame that was just run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameCallback(callback func(frame demo.Frame)) EngineBuilderOption {
	return func(e *engine) {
		e.frameCallback = callback
	}
}
