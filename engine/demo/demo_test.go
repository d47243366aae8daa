package demo

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/camera"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer/uniform_handle"
	"github.com/Carmen-Shannon/oxy-params/engine/settings"
	"github.com/Carmen-Shannon/oxy-params/engine/synchronizer"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrame(elapsed, delta float32) Frame {
	return Frame{Pass: pass.NewPass(1280, 720), Elapsed: elapsed, Delta: delta}
}

func TestLightsBasic_FrameUploadsParamsAndDelta(t *testing.T) {
	backend := renderer.NewMemoryBackend()
	d := NewLightsBasic()
	require.NoError(t, d.Init(backend))

	d.Update(newFrame(3, 0.016))

	params := backend.Buffer(uniform.ParamsUniformName)
	require.NotNil(t, params)
	assert.InDeltaSlice(t, []float32{1.0, 0.782, 0.344, 0.2, 1.02, 0.782, 0.344, 1.0}, params.Floats()[:8], 1e-6)
	assert.Equal(t, []float32{0.016, 0, 0, 0}, backend.Buffer(uniform.TimeUniformName).Floats())
	assert.Equal(t, pass.GroundModel(10), d.Model())

	d.Shutdown()
	assert.True(t, params.Released())
	assert.True(t, backend.Buffer(uniform.TimeUniformName).Released())
}

func TestLightsBasic_EditorRunsBeforeSync(t *testing.T) {
	backend := renderer.NewMemoryBackend()
	var drawn []mgl32.Vec3
	d := NewLightsBasic(
		WithSettingsEditor(func(s *settings.Settings, _ Frame) {
			s.Material.Metallic = 0.25
			s.Light.Longitude = 0
		}),
		WithMarkerDrawer(synchronizer.MarkerDrawerFunc(func(_ common.PassID, p mgl32.Vec3) {
			drawn = append(drawn, p)
		})),
	)
	require.NoError(t, d.Init(backend))
	defer d.Shutdown()

	d.Update(newFrame(0, 0))

	assert.Equal(t, float32(0.25), d.Pipeline().Params().Scalar(uniform.FieldMetallic))
	require.Len(t, drawn, 1)
	assert.InDelta(t, 20, drawn[0].Y(), 1e-5)
	assert.Equal(t, float32(0.25), backend.Buffer(uniform.ParamsUniformName).Floats()[7])
}

func TestLightsBasic_CameraMovesWithScaledDelta(t *testing.T) {
	c := camera.NewCamera(camera.WithAngles(0, 0), camera.WithMoveSpeed(10))
	d := NewLightsBasic(WithCamera(c))
	require.NoError(t, d.Init(renderer.NewMemoryBackend()))
	defer d.Shutdown()

	f := newFrame(0, 1)
	f.Input = camera.Input{Forward: true}
	d.Update(f)

	assert.InDelta(t, 1.5, c.Position().Z(), 1e-5)
	assert.Equal(t, f.Pass.Transform(c.ViewMatrix()), d.View())
}

func TestGoochHighlighted_Frame(t *testing.T) {
	backend := renderer.NewMemoryBackend()
	d := NewGoochHighlighted(WithGoochSettingsEditor(func(s *settings.GoochSettings, _ Frame) {
		s.SurfaceColor = mgl32.Vec3{0.1, 0.2, 0.3}
	}))
	require.NoError(t, d.Init(backend))

	d.Update(newFrame(2, 0.016))

	params := backend.Buffer(uniform.ParamsUniformName).Floats()
	assert.Equal(t, float32(2), params[0], "time is packed in slot 0")
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, params[12:15])
	assert.Nil(t, backend.Buffer(uniform.TimeUniformName), "gooch uploads no separate time uniform")
	assert.Equal(t, pass.TurntableModel(2), d.Model())

	f := newFrame(2, 0.016)
	assert.Equal(t, f.Pass.Transform(pass.LookAt(mgl32.Vec3{0, 1, -2.5}, mgl32.Vec3{0, 1, 0})), d.View())

	d.Shutdown()
	assert.Len(t, backend.Buffers(), 1)
	assert.True(t, backend.Buffers()[0].Released())
}

func TestGoochHighlighted_MarkerGetsUnitSunVector(t *testing.T) {
	var drawn []mgl32.Vec3
	d := NewGoochHighlighted(WithGoochMarkerDrawer(synchronizer.MarkerDrawerFunc(func(p common.PassID, v mgl32.Vec3) {
		assert.Equal(t, common.PassMain, p)
		drawn = append(drawn, v)
	})))
	require.NoError(t, d.Init(renderer.NewMemoryBackend()))
	defer d.Shutdown()

	d.Update(newFrame(1, 0.016))

	require.Len(t, drawn, 1)
	assert.InDelta(t, 1, drawn[0].Len(), 1e-5)

	// the uploaded direction points from the sun to the surface
	params := d.Pipeline().Params().Floats()
	assert.InDelta(t, -drawn[0].X(), params[7], 1e-5)
	assert.InDelta(t, -drawn[0].Y(), params[11], 1e-5)
	assert.InDelta(t, -drawn[0].Z(), params[15], 1e-5)
}

func TestDemo_InitFailureIsReportedAndCleanedUp(t *testing.T) {
	backend := renderer.NewMemoryBackend(renderer.WithAllocationLimit(1))
	d := NewLightsBasic()

	err := d.Init(backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, renderer.ErrAllocation)

	require.Len(t, backend.Buffers(), 1)
	assert.True(t, backend.Buffers()[0].Released(), "the buffer allocated before the failure is released")
	assert.NotPanics(t, d.Shutdown)
}

func TestDemo_UpdateAfterShutdownIsAContractViolation(t *testing.T) {
	tests := []struct {
		name string
		demo Demo
	}{
		{"lights basic", NewLightsBasic()},
		{"gooch", NewGoochHighlighted()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.demo.Init(renderer.NewMemoryBackend()))
			tt.demo.Shutdown()

			defer func() {
				r := recover()
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, uniform_handle.ErrContractViolation))
			}()
			tt.demo.Update(newFrame(0, 0))
		})
	}
}

func TestDemo_SecondInitIsAContractViolation(t *testing.T) {
	backend := renderer.NewMemoryBackend()
	d := NewLightsBasic()
	require.NoError(t, d.Init(backend))
	defer d.Shutdown()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, uniform_handle.ErrContractViolation)

		var cv *uniform_handle.ContractViolation
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "Init", cv.Op)
		assert.Equal(t, uniform_handle.StateInitialized, cv.State)
		assert.Len(t, backend.Buffers(), 2, "no second set of buffers is allocated")
	}()
	_ = d.Init(backend)
}

func TestDemo_UpdateBeforeInitIsAContractViolation(t *testing.T) {
	d := NewGoochHighlighted()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, uniform_handle.ErrContractViolation)
	}()
	d.Update(newFrame(0, 0))
}
