package light

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FromLatLong converts polar angles into a unit vector using the spherical-to-Cartesian
// convention of the rendering toolkit the shaders were written against:
//
//	(-sinθ·sinφ, cosθ, -sinθ·cosφ)
//
// where φ is the azimuth (latitude) and θ is the angle from +Y (longitude). A longitude of
// zero points straight up regardless of the azimuth.
//
// Parameters:
//   - latitude: azimuth φ in radians
//   - longitude: polar angle θ in radians
//
// Returns:
//   - mgl32.Vec3: the unit vector
func FromLatLong(latitude, longitude float32) mgl32.Vec3 {
	sp, cp := math.Sincos(float64(latitude))
	st, ct := math.Sincos(float64(longitude))
	return mgl32.Vec3{
		float32(-st * sp),
		float32(ct),
		float32(-st * cp),
	}
}

// Resolve converts a polar light into its Cartesian position and direction. It is a pure
// function: the result depends only on the three inputs.
//
// The unit vector is normalized after construction, and the direction is normalized again
// after negation so float drift never leaks a non-unit direction into a shader.
//
// Parameters:
//   - p: the polar light
//
// Returns:
//   - Resolution: the unit vector, position and direction
func Resolve(p PolarLight) Resolution {
	unit := FromLatLong(p.Latitude, p.Longitude).Normalize()
	return Resolution{
		Unit:      unit,
		Position:  unit.Mul(p.Distance),
		Direction: unit.Mul(-1).Normalize(),
	}
}

// ResolvePosition returns the light position for the given polar coordinates.
//
// Parameters:
//   - latitude: azimuth in radians
//   - longitude: angle from +Y in radians
//   - distance: distance from the origin
//
// Returns:
//   - mgl32.Vec3: the position
func ResolvePosition(latitude, longitude, distance float32) mgl32.Vec3 {
	return Resolve(PolarLight{Latitude: latitude, Longitude: longitude, Distance: distance}).Position
}

// ResolveDirection returns the normalized light-to-surface direction for the given angles.
// Distance does not affect a direction, so it is not a parameter.
//
// Parameters:
//   - latitude: azimuth in radians
//   - longitude: angle from +Y in radians
//
// Returns:
//   - mgl32.Vec3: the unit direction
func ResolveDirection(latitude, longitude float32) mgl32.Vec3 {
	return Resolve(PolarLight{Latitude: latitude, Longitude: longitude, Distance: 1}).Direction
}
