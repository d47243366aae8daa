// Package settings holds the live-editable shading state the UI layer mutates each frame.
//
// Settings are plain structs with exported fields. Nothing here validates or clamps values:
// keeping roughness in [0, 1] or radii positive is the job of whoever edits them (see Ranges).
// The GPU never reads these structs directly; the synchronizer copies them into a packed
// parameter layout every frame.
package settings

import (
	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a PBR metal/roughness material.
type Material struct {
	// Albedo is the base color.
	Albedo mgl32.Vec3
	// Roughness is the microfacet roughness, 0 = mirror, 1 = fully diffuse.
	Roughness float32
	// F0 is the reflectance at normal incidence.
	F0 mgl32.Vec3
	// Metallic blends between dielectric (0) and metal (1) response.
	Metallic float32
}

// Light is a punctual light described in polar form. Only Color and the radii reach the
// parameter buffer as-is; Latitude, Longitude and Distance are resolved into a Cartesian
// position or direction every frame.
type Light struct {
	// Color is the RGB light color.
	Color mgl32.Vec3
	// Latitude is the azimuth angle in radians, UI range [-45°, 45°].
	Latitude float32
	// Longitude is the angle from the +Y axis in radians, UI range [0°, 90°].
	Longitude float32
	// Distance is the distance of the light from the origin.
	Distance float32
	// RadiusMin is the distance below which the light has full influence.
	RadiusMin float32
	// RadiusMax is the distance beyond which the light has no influence.
	RadiusMax float32
}

// Settings is the editable state of the PBR lights demo.
type Settings struct {
	Material Material
	Light    Light
}

// Default values of the PBR lights demo: a gold-like metal lit by a white light.
var (
	DefaultAlbedo    = mgl32.Vec3{1.0, 0.782, 0.344}
	DefaultRoughness = float32(0.2)
	DefaultF0        = mgl32.Vec3{1.02, 0.782, 0.344}
	DefaultMetallic  = float32(1.0)

	DefaultLightColor     = mgl32.Vec3{1, 1, 1}
	DefaultLightLatitude  = float32(0)
	DefaultLightLongitude = common.DegToRad(30)
	DefaultLightDistance  = float32(20)
	DefaultLightRadiusMin = float32(1)
	DefaultLightRadiusMax = float32(50)
)

// NewSettings creates the PBR demo settings with their documented defaults, then applies options.
//
// Parameters:
//   - options: a variadic list of SettingsBuilderOption functions
//
// Returns:
//   - *Settings: the settings instance; callers keep and mutate it for the application's lifetime
func NewSettings(options ...SettingsBuilderOption) *Settings {
	s := &Settings{
		Material: Material{
			Albedo:    DefaultAlbedo,
			Roughness: DefaultRoughness,
			F0:        DefaultF0,
			Metallic:  DefaultMetallic,
		},
		Light: Light{
			Color:     DefaultLightColor,
			Latitude:  DefaultLightLatitude,
			Longitude: DefaultLightLongitude,
			Distance:  DefaultLightDistance,
			RadiusMin: DefaultLightRadiusMin,
			RadiusMax: DefaultLightRadiusMax,
		},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// GoochSettings is the editable state of the Gooch highlighted demo.
type GoochSettings struct {
	// WarmColor is blended in on surfaces facing the light.
	WarmColor mgl32.Vec3
	// CoolColor is blended in on surfaces facing away from the light.
	CoolColor mgl32.Vec3
	// HighlightColor is the specular highlight color.
	HighlightColor mgl32.Vec3
	// SurfaceColor is the base surface color.
	SurfaceColor mgl32.Vec3
	// LightLatitude is the sun azimuth in radians, UI range [-45°, 45°].
	LightLatitude float32
	// LightLongitude is the sun angle from +Y in radians. The demo fixes it at 30°.
	LightLongitude float32
}

// NewGoochSettings creates the Gooch demo settings with their defaults: grey surface, yellowish
// warm tone, bluish cool tone and a white highlight.
//
// Parameters:
//   - options: a variadic list of GoochBuilderOption functions
//
// Returns:
//   - *GoochSettings: the settings instance
func NewGoochSettings(options ...GoochBuilderOption) *GoochSettings {
	s := &GoochSettings{
		SurfaceColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		WarmColor:      mgl32.Vec3{0.3, 0.3, 0.0},
		CoolColor:      mgl32.Vec3{0.0, 0.0, 0.55},
		HighlightColor: mgl32.Vec3{1, 1, 1},
		LightLatitude:  0,
		LightLongitude: common.DegToRad(30),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Range is an inclusive [Min, Max] bound for an editable value.
type Range struct {
	Min, Max float32
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges lists the bounds the editing UI is expected to enforce, keyed by setting name.
// Angles are in radians. The settings types never consult this table themselves.
//
// Returns:
//   - map[string]Range: a fresh copy of the bounds
func Ranges() map[string]Range {
	return map[string]Range{
		"roughness":       {0, 1},
		"metallic":        {0, 1},
		"light.latitude":  {common.DegToRad(-45), common.DegToRad(45)},
		"light.longitude": {0, common.DegToRad(90)},
		"light.distance":  {0, 100},
		"light.radius":    {0, 100},
	}
}
