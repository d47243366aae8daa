package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_CreateBuffer(t *testing.T) {
	b := NewMemoryBackend()

	buf, err := b.CreateBuffer(BufferDescriptor{Label: "u_params", SlotCount: 4, Frequency: uniform.FrequencyDraw})
	require.NoError(t, err)

	assert.Equal(t, "u_params", buf.Label())
	assert.Equal(t, uint64(64), buf.Size())
	assert.Equal(t, uniform.FrequencyDraw, buf.Frequency())
	assert.Same(t, buf, b.Buffer("u_params"))
	assert.Len(t, b.Buffers(), 1)
	assert.Nil(t, b.Buffer("u_missing"))
}

func TestMemoryBackend_CreateBufferFailures(t *testing.T) {
	tests := []struct {
		name    string
		backend *MemoryBackend
		desc    BufferDescriptor
	}{
		{"zero slots", NewMemoryBackend(), BufferDescriptor{Label: "a", SlotCount: 0}},
		{"negative slots", NewMemoryBackend(), BufferDescriptor{Label: "a", SlotCount: -1}},
		{"limit reached", NewMemoryBackend(WithAllocationLimit(0)), BufferDescriptor{Label: "a", SlotCount: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.backend.CreateBuffer(tt.desc)
			assert.Nil(t, buf)
			assert.ErrorIs(t, err, ErrAllocation)
		})
	}
}

func TestMemoryBuffer_WriteKeepsLastContents(t *testing.T) {
	b := NewMemoryBackend()
	buf, err := b.CreateBuffer(BufferDescriptor{Label: "u_time", SlotCount: 1, Frequency: uniform.FrequencyFrame})
	require.NoError(t, err)
	mem := b.Buffer("u_time")

	buf.Write(common.Float32sToBytes([]float32{1, 2, 3, 4}))
	buf.Write(common.Float32sToBytes([]float32{5, 0, 0, 0}))

	assert.Equal(t, []float32{5, 0, 0, 0}, mem.Floats())
	assert.Equal(t, 2, mem.Writes())
}

func TestMemoryBuffer_Contracts(t *testing.T) {
	b := NewMemoryBackend()
	buf, err := b.CreateBuffer(BufferDescriptor{Label: "u_params", SlotCount: 2})
	require.NoError(t, err)

	assert.Panics(t, func() { buf.Write(make([]byte, 16)) }, "partial writes are not supported")

	buf.Release()
	assert.True(t, b.Buffer("u_params").Released())
	assert.Panics(t, func() { buf.Write(make([]byte, 32)) })
	assert.Panics(t, buf.Release)
}

func TestMemoryBackend_Frames(t *testing.T) {
	b := NewMemoryBackend()
	vp := common.Viewport{Width: 1280, Height: 720}

	require.NoError(t, b.BeginFrame(common.PassMain, vp, 0x303030ff))
	assert.Error(t, b.BeginFrame(common.PassMain, vp, 0x303030ff))
	b.EndFrame()
	b.Present()
	b.EndFrame()

	pass, view, clear := b.LastFrame()
	assert.Equal(t, common.PassMain, pass)
	assert.Equal(t, vp, view)
	assert.Equal(t, common.RGBA(0x303030ff), clear)
	assert.Equal(t, 1, b.FrameCount())

	b.Release()
	assert.True(t, b.Released())
}

func TestNewBackend(t *testing.T) {
	b, err := NewBackend(BackendTypeMemory, WithMemoryAllocationLimit(1))
	require.NoError(t, err)
	assert.Equal(t, BackendTypeMemory, b.Type())

	_, err = b.CreateBuffer(BufferDescriptor{Label: "a", SlotCount: 1})
	require.NoError(t, err)
	_, err = b.CreateBuffer(BufferDescriptor{Label: "b", SlotCount: 1})
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = NewBackend(RendererBackendType(42))
	assert.Error(t, err)
}

func TestParseBackendType(t *testing.T) {
	typ, err := ParseBackendType("memory")
	require.NoError(t, err)
	assert.Equal(t, BackendTypeMemory, typ)

	typ, err = ParseBackendType("wgpu")
	require.NoError(t, err)
	assert.Equal(t, BackendTypeWGPU, typ)
	assert.Equal(t, "wgpu", typ.String())

	_, err = ParseBackendType("vulkan")
	assert.Error(t, err)
}
