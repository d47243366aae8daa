// Package pass describes a render pass as the parameter system sees it: an id, a viewport,
// a clear color and the view/projection pair set up before the external pass draws.
package pass

import (
	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultClearColor is the clear color both demos use.
const DefaultClearColor common.RGBA = 0x303030ff

// Pass is one render pass of a frame.
type Pass struct {
	// ID is the pass identifier the overlay and backend see.
	ID common.PassID
	// Viewport is the pass rectangle, normally the full framebuffer.
	Viewport common.Viewport
	// Clear is the color the viewport is cleared to.
	Clear common.RGBA

	// FovY is the vertical field of view in radians.
	FovY float32
	// Near and Far are the clip plane distances.
	Near, Far float32
}

// ViewTransform is the matrix pair handed to the external render pass.
type ViewTransform struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// ViewProjection returns Projection * View.
func (v ViewTransform) ViewProjection() mgl32.Mat4 {
	return v.Projection.Mul4(v.View)
}

// NewPass creates the main pass with a 60° vertical field of view, clip planes at 0.1 and 100
// and the default clear color, then applies options.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//   - options: a variadic list of PassBuilderOption functions
//
// Returns:
//   - *Pass: the pass
func NewPass(width, height int, options ...PassBuilderOption) *Pass {
	p := &Pass{
		ID:    common.PassMain,
		Clear: DefaultClearColor,
		FovY:  mgl32.DegToRad(60),
		Near:  0.1,
		Far:   100,
	}
	p.Resize(width, height)
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Resize sets the viewport to cover a width x height framebuffer.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
func (p *Pass) Resize(width, height int) {
	p.Viewport = common.Viewport{
		Width:  uint16(common.Clamp(width, 0, 0xffff)),
		Height: uint16(common.Clamp(height, 0, 0xffff)),
	}
}

// Projection returns the perspective projection for the current viewport aspect.
func (p *Pass) Projection() mgl32.Mat4 {
	return mgl32.Perspective(p.FovY, p.Viewport.Aspect(), p.Near, p.Far)
}

// Transform pairs view with this pass's projection.
//
// Parameters:
//   - view: the world-to-view matrix
//
// Returns:
//   - ViewTransform: the view/projection pair
func (p *Pass) Transform(view mgl32.Mat4) ViewTransform {
	return ViewTransform{View: view, Projection: p.Projection()}
}

// LookAt returns the view matrix of a fixed camera at eye looking at center with +Y up.
//
// Parameters:
//   - eye: the camera position
//   - center: the point looked at
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, center mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
}
