package renderer

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
)

// MemoryBackend is a Backend that keeps buffer contents in host memory. It records what was
// submitted so tests and headless runs can inspect it.
type MemoryBackend struct {
	buffers    []*MemoryBuffer
	allocLimit int

	frameOpen bool
	frames    int
	lastPass  common.PassID
	lastView  common.Viewport
	lastClear common.RGBA
	width     int
	height    int
	released  bool
}

var _ Backend = &MemoryBackend{}

// NewMemoryBackend creates an in-memory backend.
//
// Parameters:
//   - options: variadic list of MemoryBackendOption functions
//
// Returns:
//   - *MemoryBackend: the backend
func NewMemoryBackend(options ...MemoryBackendOption) *MemoryBackend {
	b := &MemoryBackend{allocLimit: -1}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// MemoryBackendOption is a functional option for configuring a MemoryBackend.
type MemoryBackendOption func(*MemoryBackend)

// WithAllocationLimit makes CreateBuffer fail once limit buffers have been allocated.
// A negative limit means unlimited.
//
// Parameters:
//   - limit: the maximum number of buffers
//
// Returns:
//   - MemoryBackendOption: option function to apply
func WithAllocationLimit(limit int) MemoryBackendOption {
	return func(b *MemoryBackend) {
		b.allocLimit = limit
	}
}

func (b *MemoryBackend) Type() RendererBackendType {
	return BackendTypeMemory
}

func (b *MemoryBackend) CreateBuffer(desc BufferDescriptor) (Buffer, error) {
	if desc.SlotCount <= 0 {
		return nil, fmt.Errorf("%w: buffer %q has %d slots", ErrAllocation, desc.Label, desc.SlotCount)
	}
	if b.allocLimit >= 0 && len(b.buffers) >= b.allocLimit {
		return nil, fmt.Errorf("%w: buffer %q exceeds allocation limit %d", ErrAllocation, desc.Label, b.allocLimit)
	}
	buf := &MemoryBuffer{
		desc:     desc,
		contents: make([]byte, desc.Size()),
	}
	b.buffers = append(b.buffers, buf)
	return buf, nil
}

func (b *MemoryBackend) Resize(width, height int) {
	b.width = width
	b.height = height
}

func (b *MemoryBackend) BeginFrame(pass common.PassID, viewport common.Viewport, clear common.RGBA) error {
	if b.frameOpen {
		return fmt.Errorf("previous frame not yet ended")
	}
	b.frameOpen = true
	b.lastPass = pass
	b.lastView = viewport
	b.lastClear = clear
	return nil
}

func (b *MemoryBackend) EndFrame() {
	if !b.frameOpen {
		return
	}
	b.frameOpen = false
	b.frames++
}

func (b *MemoryBackend) Present() {}

func (b *MemoryBackend) Release() {
	b.released = true
}

// Buffers returns every buffer allocated so far, released or not, in allocation order.
func (b *MemoryBackend) Buffers() []*MemoryBuffer {
	return slices.Clone(b.buffers)
}

// Buffer returns the most recently allocated buffer with the given label, or nil.
//
// Parameters:
//   - label: the buffer label
//
// Returns:
//   - *MemoryBuffer: the buffer or nil
func (b *MemoryBackend) Buffer(label string) *MemoryBuffer {
	for i := len(b.buffers) - 1; i >= 0; i-- {
		if b.buffers[i].desc.Label == label {
			return b.buffers[i]
		}
	}
	return nil
}

// FrameCount returns the number of frames ended so far.
func (b *MemoryBackend) FrameCount() int {
	return b.frames
}

// LastFrame returns the pass, viewport and clear color of the most recently begun frame.
func (b *MemoryBackend) LastFrame() (common.PassID, common.Viewport, common.RGBA) {
	return b.lastPass, b.lastView, b.lastClear
}

// Released reports whether Release has been called.
func (b *MemoryBackend) Released() bool {
	return b.released
}

// MemoryBuffer is the Buffer implementation of MemoryBackend.
type MemoryBuffer struct {
	desc     BufferDescriptor
	contents []byte
	writes   int
	released bool
}

var _ Buffer = &MemoryBuffer{}

func (m *MemoryBuffer) Label() string {
	return m.desc.Label
}

func (m *MemoryBuffer) Size() uint64 {
	return m.desc.Size()
}

func (m *MemoryBuffer) Frequency() uniform.Frequency {
	return m.desc.Frequency
}

func (m *MemoryBuffer) Write(data []byte) {
	if m.released {
		panic(fmt.Sprintf("renderer: write to released buffer %q", m.desc.Label))
	}
	if uint64(len(data)) != m.desc.Size() {
		panic(fmt.Sprintf("renderer: partial write of %d bytes to %d-byte buffer %q", len(data), m.desc.Size(), m.desc.Label))
	}
	copy(m.contents, data)
	m.writes++
}

func (m *MemoryBuffer) Release() {
	if m.released {
		panic(fmt.Sprintf("renderer: buffer %q released twice", m.desc.Label))
	}
	m.released = true
}

// Contents returns a copy of the last-submitted bytes.
func (m *MemoryBuffer) Contents() []byte {
	return slices.Clone(m.contents)
}

// Floats returns the last-submitted contents decoded as float32 values.
func (m *MemoryBuffer) Floats() []float32 {
	return common.BytesToFloat32s(m.contents)
}

// Writes returns the number of submissions received.
func (m *MemoryBuffer) Writes() int {
	return m.writes
}

// Released reports whether the buffer has been released.
func (m *MemoryBuffer) Released() bool {
	return m.released
}
