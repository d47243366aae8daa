package camera

// Input is one frame's worth of camera-relevant input state, filled by the window layer.
type Input struct {
	// MouseX and MouseY are the cursor position in window pixels.
	MouseX, MouseY float32
	// Look is true while the look button (right mouse) is held.
	Look bool

	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
}
