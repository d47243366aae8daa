package engine

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-params/engine/camera"
	"github.com/Carmen-Shannon/oxy-params/engine/demo"
	"github.com/Carmen-Shannon/oxy-params/engine/logger"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/profiler"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/window"
	"go.uber.org/zap"
)

// DefaultMaxDelta is the frame delta clamp the engine applies unless configured otherwise.
// Zero: frames report the raw delta, however long the stall.
const DefaultMaxDelta time.Duration = 0

// EventSource is the platform event pump sampled at the start of every frame.
// window.Window satisfies it.
type EventSource interface {
	// PollEvents processes pending events and reports whether the loop should keep running.
	PollEvents() bool

	// Input samples the camera input state.
	Input() camera.Input
}

// engine implements the Engine interface.
// Drives one demo through a single-threaded frame loop.
type engine struct {
	backend renderer.Backend
	demo    demo.Demo

	window window.Window
	events EventSource
	clock  profiler.Clock
	pass   *pass.Pass

	maxDelta   time.Duration
	frameLimit uint64
	frames     uint64
	quit       bool

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(frame demo.Frame)
}

// Engine is the main entry point for the engine.
// It owns the backend, the demo and (optionally) the window, and runs them in a fixed order:
//
//  1. poll window events
//  2. tick the frame timer
//  3. demo update: settings editor, parameter sync, view setup, uniform submission
//  4. begin, end and present the frame on the backend
//
// Teardown runs in reverse acquisition order: demo, backend, window.
type Engine interface {
	// Run initializes the demo, runs the frame loop until the window closes, the frame limit is
	// reached or Quit is called, then tears everything down. Teardown runs even if Init fails.
	//
	// Returns:
	//   - error: the demo initialization error, if any
	Run() error

	// Quit makes the loop stop after the current frame.
	Quit()

	// Frames returns the number of frames completed so far.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Pass returns the pass the engine prepares each frame.
	//
	// Returns:
	//   - *pass.Pass: the main pass
	Pass() *pass.Pass

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

// NewEngine creates a new Engine for d on backend with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - backend: the GPU backend, released by the engine at teardown
//   - d: the demo to run
//   - options: functional options for engine configuration (window, clock, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(backend renderer.Backend, d demo.Demo, options ...EngineBuilderOption) Engine {
	e := &engine{
		backend:  backend,
		demo:     d,
		maxDelta: DefaultMaxDelta,
		pass:     pass.NewPass(1280, 720),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.clock == nil {
		e.clock = profiler.NewMonotonicClock()
	}
	e.profiler = profiler.NewProfiler(e.clock)

	if e.window != nil {
		e.pass.Resize(e.window.Width(), e.window.Height())
		e.window.SetResizeCallback(func(width, height int) {
			e.backend.Resize(width, height)
			e.pass.Resize(width, height)
		})
	}

	return e
}

func (e *engine) Run() error {
	defer e.teardown()

	if err := e.demo.Init(e.backend); err != nil {
		logger.Log.Error("demo init failed", zap.String("demo", e.demo.Name()), zap.Error(err))
		return fmt.Errorf("init %s: %w", e.demo.Name(), err)
	}

	timer := profiler.NewFrameTimer(e.clock, profiler.WithMaxDelta(e.maxDelta))
	logger.Log.Info("engine running",
		zap.String("demo", e.demo.Name()),
		zap.Stringer("backend", e.backend.Type()),
		zap.Stringer("viewport", e.pass.Viewport),
		zap.Duration("max_delta", timer.MaxDelta()),
	)

	for !e.quit {
		if !e.frame(timer) {
			break
		}
		if e.frameLimit > 0 && e.frames >= e.frameLimit {
			break
		}
	}

	logger.Log.Info("engine stopped", zap.Uint64("frames", e.frames))
	return nil
}

// frame runs one iteration of the loop. It returns false when the event source asks to stop.
func (e *engine) frame(timer *profiler.FrameTimer) bool {
	var input camera.Input
	if e.events != nil {
		if !e.events.PollEvents() {
			return false
		}
		input = e.events.Input()
	}

	timer.Tick()
	f := demo.Frame{
		Pass:    e.pass,
		Elapsed: timer.ElapsedSeconds(),
		Delta:   timer.DeltaSeconds(),
		Input:   input,
	}

	e.demo.Update(f)

	if err := e.backend.BeginFrame(e.pass.ID, e.pass.Viewport, e.pass.Clear); err != nil {
		logger.Log.Warn("skipping frame", zap.Error(err))
	} else {
		e.backend.EndFrame()
		e.backend.Present()
	}

	if e.frameCallback != nil {
		e.frameCallback(f)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	e.frames++
	return true
}

// teardown releases the demo, backend and window in reverse acquisition order.
func (e *engine) teardown() {
	e.demo.Shutdown()
	e.backend.Release()
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			logger.Log.Warn("window close", zap.Error(err))
		}
	}
}

func (e *engine) Quit() {
	e.quit = true
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func (e *engine) Pass() *pass.Pass {
	return e.pass
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}
