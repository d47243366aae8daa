package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultMouseSpeed      = 0.0020
	defaultMoveSpeed       = 30.0
	defaultHorizontalAngle = 0.01
)

type cameraImpl struct {
	eye mgl32.Vec3

	horizontalAngle float32
	verticalAngle   float32

	mouseSpeed float32
	moveSpeed  float32

	looking   bool
	lastMouse mgl32.Vec2
}

// Camera is a free-fly first-person camera. Holding the look button and moving the mouse turns
// it; the movement flags translate it along its own axes.
type Camera interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Position() mgl32.Vec3

	// SetPosition moves the eye.
	//
	// Parameters:
	//   - p: world-space eye position
	SetPosition(p mgl32.Vec3)

	// HorizontalAngle returns the yaw in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	HorizontalAngle() float32

	// SetHorizontalAngle sets the yaw in radians.
	//
	// Parameters:
	//   - a: yaw in radians
	SetHorizontalAngle(a float32)

	// VerticalAngle returns the pitch in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	VerticalAngle() float32

	// SetVerticalAngle sets the pitch in radians. Negative looks down.
	//
	// Parameters:
	//   - a: pitch in radians
	SetVerticalAngle(a float32)

	// Direction returns the unit view direction derived from the two angles.
	//
	// Returns:
	//   - mgl32.Vec3: the view direction
	Direction() mgl32.Vec3

	// Update applies one frame of input. Movement is scaled by delta.
	//
	// Parameters:
	//   - delta: the frame step in seconds, already scaled by the caller
	//   - in: the input state for this frame
	Update(delta float32, in Input)

	// ViewMatrix returns the world-to-view transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera at the origin looking down +Z, then applies options.
//
// Parameters:
//   - options: a variadic list of CameraBuilderOption functions
//
// Returns:
//   - Camera: the camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		horizontalAngle: defaultHorizontalAngle,
		mouseSpeed:      defaultMouseSpeed,
		moveSpeed:       defaultMoveSpeed,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.eye = p
}

func (c *cameraImpl) HorizontalAngle() float32 {
	return c.horizontalAngle
}

func (c *cameraImpl) SetHorizontalAngle(a float32) {
	c.horizontalAngle = a
}

func (c *cameraImpl) VerticalAngle() float32 {
	return c.verticalAngle
}

func (c *cameraImpl) SetVerticalAngle(a float32) {
	c.verticalAngle = a
}

func (c *cameraImpl) Direction() mgl32.Vec3 {
	sh, ch := math.Sincos(float64(c.horizontalAngle))
	sv, cv := math.Sincos(float64(c.verticalAngle))
	return mgl32.Vec3{float32(cv * sh), float32(sv), float32(cv * ch)}
}

// right returns the horizontal axis perpendicular to the view direction.
func (c *cameraImpl) right() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.horizontalAngle) - math.Pi/2)
	return mgl32.Vec3{float32(s), 0, float32(co)}
}

func (c *cameraImpl) up() mgl32.Vec3 {
	return c.right().Cross(c.Direction())
}

func (c *cameraImpl) Update(delta float32, in Input) {
	mouse := mgl32.Vec2{in.MouseX, in.MouseY}
	if in.Look {
		if c.looking {
			d := mouse.Sub(c.lastMouse)
			c.horizontalAngle += c.mouseSpeed * d.X()
			c.verticalAngle -= c.mouseSpeed * d.Y()
		}
		c.lastMouse = mouse
	}
	c.looking = in.Look

	step := delta * c.moveSpeed
	dir, right, up := c.Direction(), c.right(), c.up()
	if in.Forward {
		c.eye = c.eye.Add(dir.Mul(step))
	}
	if in.Backward {
		c.eye = c.eye.Sub(dir.Mul(step))
	}
	if in.Left {
		c.eye = c.eye.Add(right.Mul(step))
	}
	if in.Right {
		c.eye = c.eye.Sub(right.Mul(step))
	}
	if in.Up {
		c.eye = c.eye.Add(up.Mul(step))
	}
	if in.Down {
		c.eye = c.eye.Sub(up.Mul(step))
	}
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.eye.Add(c.Direction()), c.up())
}
