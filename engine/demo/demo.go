// Package demo defines the lifecycle every shading demo implements and the two shipped demos.
//
// Each frame a demo runs the same fixed sequence: let the settings editor mutate its settings,
// synchronize the packed parameters, set up the view for the pass, then upload its uniforms.
// The engine drives the sequence; the external render pass consumes the result.
package demo

import (
	"github.com/Carmen-Shannon/oxy-params/engine/camera"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the per-frame input handed to a demo.
type Frame struct {
	// Pass is the pass being prepared.
	Pass *pass.Pass
	// Elapsed is the time since the engine started, in seconds.
	Elapsed float32
	// Delta is the (possibly clamped) time since the previous frame, in seconds.
	Delta float32
	// Input is the camera input sampled this frame.
	Input camera.Input
}

// SettingsEditor mutates a demo's settings in place once per frame, before they are synchronized.
// This is where an immediate-mode UI plugs in.
type SettingsEditor[S any] func(settings S, frame Frame)

// Demo is the fixed lifecycle of a shading demo.
type Demo interface {
	// Name returns the demo name used in logs and window titles.
	//
	// Returns:
	//   - string: the demo name
	Name() string

	// Init allocates the demo's uniform buffers on backend. An error is fatal.
	//
	// Parameters:
	//   - backend: the backend that owns the buffers
	//
	// Returns:
	//   - error: an error wrapping renderer.ErrAllocation if a buffer could not be allocated
	Init(backend renderer.Backend) error

	// Update runs one frame: edit, synchronize, set up the view, submit.
	//
	// Parameters:
	//   - frame: the frame input
	Update(frame Frame)

	// View returns the view transform computed by the last Update.
	//
	// Returns:
	//   - pass.ViewTransform: the view/projection pair
	View() pass.ViewTransform

	// Model returns the model matrix of the demo mesh computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Model() mgl32.Mat4

	// Shutdown releases everything Init acquired, in reverse order.
	Shutdown()
}
