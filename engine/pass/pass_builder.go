package pass

import "github.com/Carmen-Shannon/oxy-params/common"

// PassBuilderOption is a functional option used to configure a Pass during construction.
type PassBuilderOption func(*Pass)

// WithID sets the pass identifier.
//
// Parameters:
//   - id: the pass id
//
// Returns:
//   - PassBuilderOption: a function that sets the id
func WithID(id common.PassID) PassBuilderOption {
	return func(p *Pass) {
		p.ID = id
	}
}

// WithClearColor sets the clear color.
//
// Parameters:
//   - c: the clear color as 0xRRGGBBAA
//
// Returns:
//   - PassBuilderOption: a function that sets the clear color
func WithClearColor(c common.RGBA) PassBuilderOption {
	return func(p *Pass) {
		p.Clear = c
	}
}

// WithProjection sets the vertical field of view and clip planes.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - near: near clip distance
//   - far: far clip distance
//
// Returns:
//   - PassBuilderOption: a function that sets the projection parameters
func WithProjection(fovY, near, far float32) PassBuilderOption {
	return func(p *Pass) {
		p.FovY = fovY
		p.Near = near
		p.Far = far
	}
}
