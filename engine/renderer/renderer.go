package renderer

import (
	"fmt"
)

// NewBackend creates a Backend of the requested type.
//
// The WebGPU backend requests an adapter and device up front; failure to do so is returned
// as an error wrapping ErrAllocation and is fatal for the caller. Pass WithSurface to render
// into a window, or omit it to run headless.
//
// Parameters:
//   - backendType: the backend implementation to create
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Backend: the created backend
//   - error: error if the backend could not be created
func NewBackend(backendType RendererBackendType, options ...RendererBuilderOption) (Backend, error) {
	cfg := backendConfig{
		presentMode:     PresentModeVSync,
		allocationLimit: -1,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	switch backendType {
	case BackendTypeWGPU:
		return newWGPURendererBackend(cfg)
	case BackendTypeMemory:
		b := NewMemoryBackend(WithAllocationLimit(cfg.allocationLimit))
		b.Resize(cfg.width, cfg.height)
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported backend type %v", backendType)
	}
}
