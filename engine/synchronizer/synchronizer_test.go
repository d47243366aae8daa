package synchronizer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer/uniform_handle"
	"github.com/Carmen-Shannon/oxy-params/engine/settings"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestPipeline_DefaultScenario(t *testing.T) {
	s := settings.NewSettings()
	p := NewPipeline(NewMaterialLightWriter(s))

	p.Update(common.PassMain, 0)

	params := p.Params().Floats()
	assert.InDeltaSlice(t, []float32{1.0, 0.782, 0.344, 0.2, 1.02, 0.782, 0.344, 1.0}, params[:8], eps)

	pos := p.Params().Vec3(uniform.FieldLightPosition)
	assert.InDelta(t, 20, pos.Len(), 1e-4)
	assert.InDelta(t, 0, pos.X(), eps)
	assert.InDelta(t, 20*math.Cos(math.Pi/6), pos.Y(), 1e-4)
	assert.InDelta(t, -10, pos.Z(), 1e-4)

	assert.Equal(t, mgl32.Vec3{1, 1, 1}, p.Params().Vec3(uniform.FieldLightColor))
	assert.Equal(t, float32(1), p.Params().Scalar(uniform.FieldLightRadiusMin))
	assert.Equal(t, float32(50), p.Params().Scalar(uniform.FieldLightRadiusMax))
}

func TestPipeline_TimeLayoutIsSeparate(t *testing.T) {
	p := NewPipeline(NewMaterialLightWriter(settings.NewSettings()))

	p.Update(common.PassMain, 0.016)

	assert.Equal(t, []float32{0.016, 0, 0, 0}, p.Time().Floats())
	assert.Equal(t, uniform.FrequencyFrame, p.Time().Frequency())
	assert.Equal(t, uniform.FrequencyDraw, p.Params().Frequency())
	assert.NotContains(t, p.Params().Floats(), float32(0.016))

	assert.NotSame(t, p.Params(), p.Time())
	other := NewPipeline(NewGoochWriter(settings.NewGoochSettings()))
	assert.NotSame(t, p.Time(), other.Time(), "every pipeline owns its time layout")
	assert.Equal(t, 1, other.Time().SlotCount())
}

func TestPipeline_Idempotent(t *testing.T) {
	s := settings.NewSettings(settings.WithLightAngles(common.DegToRad(-12), common.DegToRad(71)))
	p := NewPipeline(NewMaterialLightWriter(s))

	p.Update(common.PassMain, 1.5)
	params, tm := p.Params().Bytes(), p.Time().Bytes()

	p.Update(common.PassMain, 1.5)
	assert.Equal(t, params, p.Params().Bytes())
	assert.Equal(t, tm, p.Time().Bytes())
}

func TestPipeline_FollowsSettingsEdits(t *testing.T) {
	s := settings.NewSettings()
	p := NewPipeline(NewMaterialLightWriter(s))
	p.Update(common.PassMain, 0)

	s.Material.Roughness = 0.9
	s.Light.Distance = 5
	s.Light.Longitude = 0
	p.Update(common.PassMain, 0)

	assert.Equal(t, float32(0.9), p.Params().Scalar(uniform.FieldRoughness))
	pos := p.Params().Vec3(uniform.FieldLightPosition)
	assert.InDelta(t, 0, pos.X(), eps)
	assert.InDelta(t, 5, pos.Y(), eps)
	assert.InDelta(t, 0, pos.Z(), eps)
}

func TestPipeline_MarkerSeesResolvedPositionBeforeTimeStamp(t *testing.T) {
	s := settings.NewSettings()
	var (
		calls      int
		gotPass    common.PassID
		gotPos     mgl32.Vec3
		timeAtDraw float32
	)
	var p Pipeline
	p = NewPipeline(NewMaterialLightWriter(s), WithMarkerDrawer(MarkerDrawerFunc(func(pass common.PassID, position mgl32.Vec3) {
		calls++
		gotPass = pass
		gotPos = position
		timeAtDraw = p.Time().Scalar(uniform.FieldTime)
		assert.Equal(t, s.Material.Albedo, p.Params().Vec3(uniform.FieldAlbedo), "material is written before geometry")
	})))

	p.Update(common.PassID(3), 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, common.PassID(3), gotPass)
	assert.Equal(t, p.Params().Vec3(uniform.FieldLightPosition), gotPos)
	assert.Equal(t, float32(0), timeAtDraw, "time is stamped last")
}

func TestPipeline_BufferIndependence(t *testing.T) {
	backend := renderer.NewMemoryBackend()
	p := NewPipeline(NewMaterialLightWriter(settings.NewSettings()))

	params := uniform_handle.NewUniformHandle(backend, p.Params())
	tm := uniform_handle.NewUniformHandle(backend, p.Time())
	require.NoError(t, params.Init())
	require.NoError(t, tm.Init())

	p.Update(common.PassMain, 0)
	params.Submit()
	tm.Submit()
	before := backend.Buffer(uniform.ParamsUniformName).Contents()

	p.Update(common.PassMain, 42)
	tm.Submit()

	assert.Equal(t, before, backend.Buffer(uniform.ParamsUniformName).Contents())
	assert.Equal(t, []float32{42, 0, 0, 0}, backend.Buffer(uniform.TimeUniformName).Floats())
	assert.Equal(t, 1, backend.Buffer(uniform.ParamsUniformName).Writes())
	assert.Equal(t, 2, backend.Buffer(uniform.TimeUniformName).Writes())

	params.Destroy()
	tm.Destroy()
}

func TestGoochWriter_PacksDirectionAndTime(t *testing.T) {
	s := settings.NewGoochSettings()
	p := NewPipeline(NewGoochWriter(s))

	p.Update(common.PassMain, 2.5)
	l := p.Params()

	assert.Equal(t, float32(2.5), l.Scalar(uniform.FieldTime))
	assert.Equal(t, float32(2.5), p.Time().Scalar(uniform.FieldTime))
	assert.Equal(t, s.WarmColor, l.Vec3(uniform.FieldWarmColor))
	assert.Equal(t, s.CoolColor, l.Vec3(uniform.FieldCoolColor))
	assert.Equal(t, s.HighlightColor, l.Vec3(uniform.FieldHighlightColor))
	assert.Equal(t, s.SurfaceColor, l.Vec3(uniform.FieldSurfaceColor))

	dir := mgl32.Vec3{l.Scalar(uniform.FieldLightDirX), l.Scalar(uniform.FieldLightDirY), l.Scalar(uniform.FieldLightDirZ)}
	assert.InDelta(t, 1, dir.Len(), eps)
	assert.InDelta(t, 0, dir.X(), eps)
	assert.InDelta(t, -math.Cos(math.Pi/6), dir.Y(), eps)
	assert.InDelta(t, 0.5, dir.Z(), eps)

	// direction lanes are the w components of slots 1 to 3
	assert.Equal(t, dir.X(), l.At(7))
	assert.Equal(t, dir.Y(), l.At(11))
	assert.Equal(t, dir.Z(), l.At(15))
}
