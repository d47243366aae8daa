package settings

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()

	assert.Equal(t, mgl32.Vec3{1.0, 0.782, 0.344}, s.Material.Albedo)
	assert.Equal(t, float32(0.2), s.Material.Roughness)
	assert.Equal(t, mgl32.Vec3{1.02, 0.782, 0.344}, s.Material.F0)
	assert.Equal(t, float32(1.0), s.Material.Metallic)

	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.Light.Color)
	assert.Equal(t, float32(0), s.Light.Latitude)
	assert.InDelta(t, 30.0, common.RadToDeg(s.Light.Longitude), 1e-4)
	assert.Equal(t, float32(20), s.Light.Distance)
	assert.Equal(t, float32(1), s.Light.RadiusMin)
	assert.Equal(t, float32(50), s.Light.RadiusMax)
}

func TestNewSettings_Options(t *testing.T) {
	s := NewSettings(
		WithAlbedo(0.5, 0.5, 0.5),
		WithRoughness(0.9),
		WithF0(0.04, 0.04, 0.04),
		WithMetallic(0),
		WithLightColor(1, 0, 0),
		WithLightAngles(0.1, 0.2),
		WithLightDistance(5),
		WithLightRadii(2, 8),
	)

	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, s.Material.Albedo)
	assert.Equal(t, float32(0.9), s.Material.Roughness)
	assert.Equal(t, mgl32.Vec3{0.04, 0.04, 0.04}, s.Material.F0)
	assert.Zero(t, s.Material.Metallic)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Light.Color)
	assert.Equal(t, float32(0.1), s.Light.Latitude)
	assert.Equal(t, float32(0.2), s.Light.Longitude)
	assert.Equal(t, float32(5), s.Light.Distance)
	assert.Equal(t, float32(2), s.Light.RadiusMin)
	assert.Equal(t, float32(8), s.Light.RadiusMax)
}

func TestSettings_NoClamping(t *testing.T) {
	s := NewSettings(WithRoughness(7), WithLightRadii(-1, -2))
	s.Material.Metallic = -3

	assert.Equal(t, float32(7), s.Material.Roughness)
	assert.Equal(t, float32(-1), s.Light.RadiusMin)
	assert.Equal(t, float32(-2), s.Light.RadiusMax)
	assert.Equal(t, float32(-3), s.Material.Metallic)
	assert.False(t, Ranges()["roughness"].Contains(s.Material.Roughness))
}

func TestNewGoochSettings_Defaults(t *testing.T) {
	s := NewGoochSettings()

	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.6}, s.SurfaceColor)
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.0}, s.WarmColor)
	assert.Equal(t, mgl32.Vec3{0.0, 0.0, 0.55}, s.CoolColor)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.HighlightColor)
	assert.Zero(t, s.LightLatitude)
	assert.InDelta(t, 30.0, common.RadToDeg(s.LightLongitude), 1e-4)

	warm := mgl32.Vec3{1, 0, 0}
	s = NewGoochSettings(WithGoochColors(warm, warm, warm, warm), WithGoochLightAngles(0.3, 0.4))
	assert.Equal(t, warm, s.CoolColor)
	assert.Equal(t, float32(0.3), s.LightLatitude)
}

func TestRanges(t *testing.T) {
	r := Ranges()

	assert.True(t, r["light.latitude"].Contains(common.DegToRad(-45)))
	assert.True(t, r["light.longitude"].Contains(DefaultLightLongitude))
	assert.False(t, r["light.longitude"].Contains(common.DegToRad(-1)))
}
