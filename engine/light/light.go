package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects which Cartesian form of a polar light a consumer wants.
type Mode int

const (
	// ModePosition yields the world-space light position: the unit vector scaled by distance.
	// Used by point lights.
	ModePosition Mode = iota

	// ModeDirection yields the normalized light-to-surface direction: the negated unit vector.
	// Used by directional (sun) lights.
	ModeDirection
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeDirection {
		return "direction"
	}
	return "position"
}

// PolarLight describes a light's placement in polar form. This is the generative form the
// settings hold; it is never written to a parameter buffer directly.
type PolarLight struct {
	// Latitude is the azimuth angle in radians, nominal domain [-45°, 45°].
	Latitude float32
	// Longitude is the angle from the +Y axis in radians, nominal domain [0°, 90°].
	Longitude float32
	// Distance is the distance of the light from the origin.
	Distance float32
}

// Resolution is the Cartesian form of a PolarLight.
type Resolution struct {
	// Unit is the normalized vector from the origin toward the light.
	Unit mgl32.Vec3
	// Position is Unit scaled by the light distance.
	Position mgl32.Vec3
	// Direction is the normalized light-to-surface direction, -Unit.
	Direction mgl32.Vec3
}

// Vector returns the component of the resolution selected by mode.
//
// Parameters:
//   - mode: ModePosition or ModeDirection
//
// Returns:
//   - mgl32.Vec3: the selected vector
func (r Resolution) Vector(mode Mode) mgl32.Vec3 {
	if mode == ModeDirection {
		return r.Direction
	}
	return r.Position
}
