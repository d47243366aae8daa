package synchronizer

import (
	"github.com/Carmen-Shannon/oxy-params/engine/light"
	"github.com/Carmen-Shannon/oxy-params/engine/settings"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
)

// Writer copies one demo's settings into its packed parameter layout. The Pipeline calls the
// methods in declaration order once per frame.
type Writer interface {
	// Layout returns the layout this writer fills.
	//
	// Returns:
	//   - *uniform.Layout: the structured parameter layout
	Layout() *uniform.Layout

	// WriteMaterial copies the surface attributes.
	WriteMaterial()

	// WriteLight copies the light attributes that need no resolving (color, radii).
	WriteLight()

	// WriteGeometry resolves the light's polar placement and writes the Cartesian result.
	//
	// Returns:
	//   - light.Resolution: the resolved geometry, for the debug overlay
	WriteGeometry() light.Resolution

	// WriteTime stamps the frame time into the layout if it carries one.
	//
	// Parameters:
	//   - time: the frame time value
	WriteTime(time float32)
}

// MaterialLightWriter fills the PBR material + light layout. The light is a point light:
// its resolved position is written.
type MaterialLightWriter struct {
	settings *settings.Settings
	layout   *uniform.Layout
}

var _ Writer = &MaterialLightWriter{}

// NewMaterialLightWriter creates a writer from s into a new material + light layout.
//
// Parameters:
//   - s: the settings, read every frame
//
// Returns:
//   - *MaterialLightWriter: the writer
func NewMaterialLightWriter(s *settings.Settings) *MaterialLightWriter {
	return &MaterialLightWriter{settings: s, layout: uniform.NewMaterialLightLayout()}
}

func (w *MaterialLightWriter) Layout() *uniform.Layout {
	return w.layout
}

func (w *MaterialLightWriter) WriteMaterial() {
	m := w.settings.Material
	w.layout.SetVec3(uniform.FieldAlbedo, m.Albedo)
	w.layout.SetScalar(uniform.FieldRoughness, m.Roughness)
	w.layout.SetVec3(uniform.FieldF0, m.F0)
	w.layout.SetScalar(uniform.FieldMetallic, m.Metallic)
}

func (w *MaterialLightWriter) WriteLight() {
	l := w.settings.Light
	w.layout.SetVec3(uniform.FieldLightColor, l.Color)
	w.layout.SetScalar(uniform.FieldLightRadiusMin, l.RadiusMin)
	w.layout.SetScalar(uniform.FieldLightRadiusMax, l.RadiusMax)
}

func (w *MaterialLightWriter) WriteGeometry() light.Resolution {
	l := w.settings.Light
	res := light.Resolve(light.PolarLight{Latitude: l.Latitude, Longitude: l.Longitude, Distance: l.Distance})
	w.layout.SetVec3(uniform.FieldLightPosition, res.Vector(light.ModePosition))
	return res
}

// WriteTime is a no-op: the PBR shaders read time from the separate time uniform only.
func (w *MaterialLightWriter) WriteTime(float32) {}

// GoochWriter fills the Gooch layout. The light is directional: the light-to-surface direction
// is split across the w lanes of slots 1 to 3, and time sits in slot 0.
type GoochWriter struct {
	settings *settings.GoochSettings
	layout   *uniform.Layout
}

var _ Writer = &GoochWriter{}

// NewGoochWriter creates a writer from s into a new Gooch layout.
//
// Parameters:
//   - s: the Gooch settings, read every frame
//
// Returns:
//   - *GoochWriter: the writer
func NewGoochWriter(s *settings.GoochSettings) *GoochWriter {
	return &GoochWriter{settings: s, layout: uniform.NewGoochLayout()}
}

func (w *GoochWriter) Layout() *uniform.Layout {
	return w.layout
}

func (w *GoochWriter) WriteMaterial() {
	w.layout.SetVec3(uniform.FieldSurfaceColor, w.settings.SurfaceColor)
	w.layout.SetVec3(uniform.FieldWarmColor, w.settings.WarmColor)
	w.layout.SetVec3(uniform.FieldCoolColor, w.settings.CoolColor)
}

func (w *GoochWriter) WriteLight() {
	w.layout.SetVec3(uniform.FieldHighlightColor, w.settings.HighlightColor)
}

func (w *GoochWriter) WriteGeometry() light.Resolution {
	res := light.Resolve(light.PolarLight{
		Latitude:  w.settings.LightLatitude,
		Longitude: w.settings.LightLongitude,
		Distance:  1,
	})
	dir := res.Vector(light.ModeDirection)
	w.layout.SetScalar(uniform.FieldLightDirX, dir.X())
	w.layout.SetScalar(uniform.FieldLightDirY, dir.Y())
	w.layout.SetScalar(uniform.FieldLightDirZ, dir.Z())
	return res
}

func (w *GoochWriter) WriteTime(time float32) {
	w.layout.SetScalar(uniform.FieldTime, time)
}
