// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// PassID identifies a rendering stage. Parameters and submissions are always scoped to a pass.
type PassID uint16

// PassMain is the identifier of the main (and in the shipped demos, only) render pass.
const PassMain PassID = 0

// Viewport is the pixel rectangle a pass renders into.
type Viewport struct {
	// X and Y are the top-left corner of the rectangle in pixels.
	X, Y uint16
	// Width and Height are the rectangle dimensions in pixels.
	Width, Height uint16
}

// Aspect returns the width/height ratio of the viewport, or 1 when the height is zero.
//
// Returns:
//   - float32: the aspect ratio
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// String implements fmt.Stringer for log output.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", v.Width, v.Height, v.X, v.Y)
}

// RGBA is a packed 0xRRGGBBAA color, as used for pass clear colors.
type RGBA uint32

// Floats unpacks the color into normalized [0, 1] channels.
//
// Returns:
//   - [4]float32: the red, green, blue and alpha channels
func (c RGBA) Floats() [4]float32 {
	return [4]float32{
		float32((c>>24)&0xff) / 255,
		float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255,
	}
}
