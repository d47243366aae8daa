package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option used to configure a Camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - p: world-space eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the eye position
func WithPosition(p mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = p
	}
}

// WithAngles sets the initial yaw and pitch in radians.
//
// Parameters:
//   - horizontal: yaw in radians
//   - vertical: pitch in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets both angles
func WithAngles(horizontal, vertical float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.horizontalAngle = horizontal
		c.verticalAngle = vertical
	}
}

// WithMoveSpeed sets the translation speed in units per second of delta.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithMouseSpeed sets the look sensitivity in radians per pixel.
//
// Parameters:
//   - speed: the look sensitivity
//
// Returns:
//   - CameraBuilderOption: a function that sets the look sensitivity
func WithMouseSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSpeed = speed
	}
}
