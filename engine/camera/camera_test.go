package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera_Options(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{0, 3, -6}), WithAngles(0, -0.3))

	assert.Equal(t, mgl32.Vec3{0, 3, -6}, c.Position())
	assert.Equal(t, float32(0), c.HorizontalAngle())
	assert.Equal(t, float32(-0.3), c.VerticalAngle())

	dir := c.Direction()
	assert.InDelta(t, 1, dir.Len(), 1e-6)
	assert.Less(t, dir.Y(), float32(0), "negative pitch looks down")
}

func TestCamera_MoveForward(t *testing.T) {
	c := NewCamera(WithAngles(0, 0), WithMoveSpeed(10))

	c.Update(0.5, Input{Forward: true})

	assert.InDelta(t, 0, c.Position().X(), 1e-6)
	assert.InDelta(t, 0, c.Position().Y(), 1e-6)
	assert.InDelta(t, 5, c.Position().Z(), 1e-6)

	c.Update(0.5, Input{Backward: true})
	assert.InDelta(t, 0, c.Position().Len(), 1e-6)
}

func TestCamera_LookNeedsHeldButton(t *testing.T) {
	c := NewCamera(WithAngles(0, 0), WithMouseSpeed(0.01))

	c.Update(0, Input{MouseX: 100, MouseY: 100})
	assert.Equal(t, float32(0), c.HorizontalAngle(), "moving without the look button does nothing")

	c.Update(0, Input{MouseX: 100, MouseY: 100, Look: true})
	c.Update(0, Input{MouseX: 110, MouseY: 95, Look: true})

	assert.InDelta(t, 0.1, c.HorizontalAngle(), 1e-6)
	assert.InDelta(t, 0.05, c.VerticalAngle(), 1e-6)
}

func TestCamera_ViewMatrixLooksAlongDirection(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{0, 1, -2.5}), WithAngles(0, 0))

	target := c.Position().Add(c.Direction())
	v := c.ViewMatrix().Mul4x1(target.Vec4(1))

	// the view-space forward axis is -Z
	assert.InDelta(t, 0, v.X(), 1e-5)
	assert.InDelta(t, 0, v.Y(), 1e-5)
	assert.InDelta(t, -1, v.Z(), 1e-5)
}
