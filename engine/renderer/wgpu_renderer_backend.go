package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/logger"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface // nil when running headless

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	configured    bool

	// Frame state between BeginFrame and Present.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ Backend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend creates the WebGPU instance, adapter, device and queue. When
// surfaceDescriptor is nil the backend runs headless: buffers work, frames are no-ops.
func newWGPURendererBackend(cfg backendConfig) (*wgpuRendererBackendImpl, error) {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
	}
	if cfg.presentMode == PresentModeVSync {
		w.presentMode = wgpu.PresentModeFifo
	}
	if cfg.surfaceDescriptor != nil {
		w.surface = w.instance.CreateSurface(cfg.surfaceDescriptor)
	}

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: cfg.forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("%w: request adapter: %v", ErrAllocation, err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Params Device",
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("%w: request device: %v", ErrAllocation, err)
	}
	w.device = d
	w.queue = d.GetQueue()

	if w.surface != nil && cfg.width > 0 && cfg.height > 0 {
		w.Resize(cfg.width, cfg.height)
	}

	logger.Log.Info("wgpu backend ready",
		zap.Bool("headless", w.surface == nil),
		zap.Bool("fallback_adapter", cfg.forceFallbackAdapter),
	)
	return w, nil
}

func (b *wgpuRendererBackendImpl) Type() RendererBackendType {
	return BackendTypeWGPU
}

func (b *wgpuRendererBackendImpl) CreateBuffer(desc BufferDescriptor) (Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if desc.SlotCount <= 0 {
		return nil, fmt.Errorf("%w: buffer %q has %d slots", ErrAllocation, desc.Label, desc.SlotCount)
	}

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            fmt.Sprintf("%s (per %s)", desc.Label, desc.Frequency),
		Size:             desc.Size(),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create buffer %q: %v", ErrAllocation, desc.Label, err)
	}

	return &wgpuBuffer{backend: b, buffer: buf, desc: desc}, nil
}

func (b *wgpuRendererBackendImpl) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surface == nil || width <= 0 || height <= 0 {
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.configured = true
}

func (b *wgpuRendererBackendImpl) BeginFrame(pass common.PassID, viewport common.Viewport, clear common.RGBA) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surface == nil || !b.configured {
		return nil
	}
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	c := clear.Floats()
	rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: fmt.Sprintf("Pass %d", pass),
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3]),
				},
			},
		},
	})
	if viewport.Width > 0 && viewport.Height > 0 {
		rp.SetViewport(float32(viewport.X), float32(viewport.Y), float32(viewport.Width), float32(viewport.Height), 0, 1)
	}

	b.frameEncoder = encoder
	b.framePass = rp
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}

	b.framePass.End()
	b.framePass.Release()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		logger.Log.Error("finish frame encoder", zap.Error(err))
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

// Release frees GPU objects in reverse creation order. Safe on a partially constructed backend.
func (b *wgpuRendererBackendImpl) Release() {
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// wgpuBuffer is a uniform buffer on the WebGPU device.
type wgpuBuffer struct {
	backend *wgpuRendererBackendImpl
	buffer  *wgpu.Buffer
	desc    BufferDescriptor
}

// Buffer exposes the underlying WebGPU buffer so render passes can bind it.
func (w *wgpuBuffer) Buffer() *wgpu.Buffer {
	return w.buffer
}

func (w *wgpuBuffer) Label() string {
	return w.desc.Label
}

func (w *wgpuBuffer) Size() uint64 {
	return w.desc.Size()
}

func (w *wgpuBuffer) Frequency() uniform.Frequency {
	return w.desc.Frequency
}

func (w *wgpuBuffer) Write(data []byte) {
	if uint64(len(data)) != w.desc.Size() {
		panic(fmt.Sprintf("renderer: partial write of %d bytes to %d-byte buffer %q", len(data), w.desc.Size(), w.desc.Label))
	}
	w.backend.mu.Lock()
	defer w.backend.mu.Unlock()
	w.backend.queue.WriteBuffer(w.buffer, 0, data)
}

func (w *wgpuBuffer) Release() {
	w.buffer.Release()
	w.buffer = nil
}
