package renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
)

// ErrAllocation is wrapped by every error a backend returns when it cannot create a resource.
var ErrAllocation = errors.New("gpu resource allocation failed")

// RendererBackendType identifies the backend implementation behind a Backend.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based backend.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeMemory selects the in-memory backend, which keeps the last-submitted contents
	// of every buffer instead of talking to a GPU. Used by tests and headless runs.
	BackendTypeMemory
)

// String implements fmt.Stringer.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeMemory:
		return "memory"
	default:
		return fmt.Sprintf("RendererBackendType(%d)", int(t))
	}
}

// ParseBackendType maps a backend name ("wgpu" or "memory") to its type.
//
// Parameters:
//   - name: the backend name
//
// Returns:
//   - RendererBackendType: the backend type
//   - error: error if the name is unknown
func ParseBackendType(name string) (RendererBackendType, error) {
	switch name {
	case "wgpu":
		return BackendTypeWGPU, nil
	case "memory":
		return BackendTypeMemory, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (want wgpu or memory)", name)
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// BufferDescriptor describes a packed parameter buffer to allocate.
type BufferDescriptor struct {
	// Label is the uniform name, also used as the GPU debug label.
	Label string
	// SlotCount is the number of 4-float slots the buffer holds. Fixed for the buffer's lifetime.
	SlotCount int
	// Frequency is the update frequency the buffer is tagged with. Fixed for the buffer's lifetime.
	Frequency uniform.Frequency
}

// Size returns the buffer size in bytes.
func (d BufferDescriptor) Size() uint64 {
	return uint64(d.SlotCount * uniform.SlotSize)
}

// Buffer is a backend-owned packed parameter buffer.
type Buffer interface {
	// Label returns the debug label the buffer was created with.
	Label() string

	// Size returns the buffer size in bytes.
	Size() uint64

	// Frequency returns the update frequency the buffer was tagged with at creation.
	Frequency() uniform.Frequency

	// Write uploads data as the new contents of the whole buffer. Partial updates are not
	// supported: data must be exactly Size() bytes.
	//
	// Parameters:
	//   - data: the encoded buffer contents
	Write(data []byte)

	// Release frees the buffer. It must be called exactly once.
	Release()
}

// Backend is the GPU-facing side of the parameter system. It allocates packed buffers and
// drives the per-frame clear/present sequence that the external render passes run inside.
type Backend interface {
	// Type returns the backend implementation type.
	Type() RendererBackendType

	// CreateBuffer allocates a packed parameter buffer.
	//
	// Parameters:
	//   - desc: the buffer description
	//
	// Returns:
	//   - Buffer: the allocated buffer
	//   - error: an error wrapping ErrAllocation if the buffer could not be created
	CreateBuffer(desc BufferDescriptor) (Buffer, error)

	// Resize reconfigures the presentation surface for a new framebuffer size.
	// Backends without a surface ignore it.
	//
	// Parameters:
	//   - width: new width in pixels
	//   - height: new height in pixels
	Resize(width, height int)

	// BeginFrame acquires the next frame target and starts the given pass, clearing its viewport.
	// Must be paired with EndFrame.
	//
	// Parameters:
	//   - pass: the pass being started
	//   - viewport: the pass viewport
	//   - clear: the clear color
	//
	// Returns:
	//   - error: error if the frame target could not be acquired
	BeginFrame(pass common.PassID, viewport common.Viewport, clear common.RGBA) error

	// EndFrame ends the current pass and submits the recorded work.
	EndFrame()

	// Present displays the finished frame.
	Present()

	// Release frees the device and everything created from it. Buffers should be released first.
	Release()
}
