package pass

import "github.com/go-gl/mathgl/mgl32"

// SpinRate is the rotation speed of a turntable model in radians per second.
const SpinRate = 0.37

// TurntableModel returns the model matrix of a mesh spinning about +Y, at time seconds.
//
// Parameters:
//   - time: elapsed time in seconds
//
// Returns:
//   - mgl32.Mat4: the model matrix
func TurntableModel(time float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(time * SpinRate)
}

// GroundModel returns the model matrix of a [-1, 1] cube stretched into a floor: scaled by scale,
// then moved down by the same amount so its top face sits at y = 0.
//
// Parameters:
//   - scale: the uniform scale
//
// Returns:
//   - mgl32.Mat4: the model matrix
func GroundModel(scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, -scale, 0).Mul4(mgl32.Scale3D(scale, scale, scale))
}
