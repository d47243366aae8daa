package renderer

import "github.com/cogentcore/webgpu/wgpu"

// backendConfig collects builder options before the backend is created.
type backendConfig struct {
	surfaceDescriptor    *wgpu.SurfaceDescriptor
	forceFallbackAdapter bool
	presentMode          PresentMode
	width, height        int
	allocationLimit      int
}

// RendererBuilderOption is a functional option applied to a backend during construction via NewBackend.
type RendererBuilderOption func(*backendConfig)

// WithSurface makes the backend render into the surface described by desc, typically obtained
// from Window.SurfaceDescriptor(). Without it the WebGPU backend runs headless.
//
// Parameters:
//   - desc: the platform-specific surface descriptor
//   - width: initial framebuffer width in pixels
//   - height: initial framebuffer height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the surface option
func WithSurface(desc *wgpu.SurfaceDescriptor, width, height int) RendererBuilderOption {
	return func(c *backendConfig) {
		c.surfaceDescriptor = desc
		c.width = width
		c.height = height
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(c *backendConfig) {
		c.presentMode = mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(c *backendConfig) {
		c.forceFallbackAdapter = force
	}
}

// WithMemoryAllocationLimit caps the number of buffers the memory backend hands out before
// CreateBuffer fails. Ignored by the WebGPU backend. Negative means unlimited.
//
// Parameters:
//   - limit: the maximum number of buffers
//
// Returns:
//   - RendererBuilderOption: a function that applies the option
func WithMemoryAllocationLimit(limit int) RendererBuilderOption {
	return func(c *backendConfig) {
		c.allocationLimit = limit
	}
}
