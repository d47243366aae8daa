package settings

import "github.com/go-gl/mathgl/mgl32"

// SettingsBuilderOption is a functional option for configuring Settings during construction.
type SettingsBuilderOption func(*Settings)

// WithAlbedo sets the material base color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithAlbedo(r, g, b float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Material.Albedo = mgl32.Vec3{r, g, b}
	}
}

// WithRoughness sets the material roughness. The value is stored as given.
//
// Parameters:
//   - roughness: the roughness value
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithRoughness(roughness float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Material.Roughness = roughness
	}
}

// WithF0 sets the material reflectance at normal incidence.
//
// Parameters:
//   - r, g, b: reflectance components
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithF0(r, g, b float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Material.F0 = mgl32.Vec3{r, g, b}
	}
}

// WithMetallic sets the material metalness.
//
// Parameters:
//   - metallic: the metallic value
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithMetallic(metallic float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Material.Metallic = metallic
	}
}

// WithLightColor sets the light color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithLightColor(r, g, b float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Light.Color = mgl32.Vec3{r, g, b}
	}
}

// WithLightAngles sets the polar angles of the light.
//
// Parameters:
//   - latitude: azimuth in radians
//   - longitude: angle from +Y in radians
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithLightAngles(latitude, longitude float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Light.Latitude = latitude
		s.Light.Longitude = longitude
	}
}

// WithLightDistance sets the distance of the light from the origin.
//
// Parameters:
//   - distance: the distance
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithLightDistance(distance float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Light.Distance = distance
	}
}

// WithLightRadii sets the influence radii of the light.
//
// Parameters:
//   - minRadius: full-influence radius
//   - maxRadius: zero-influence radius
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithLightRadii(minRadius, maxRadius float32) SettingsBuilderOption {
	return func(s *Settings) {
		s.Light.RadiusMin = minRadius
		s.Light.RadiusMax = maxRadius
	}
}

// GoochBuilderOption is a functional option for configuring GoochSettings during construction.
type GoochBuilderOption func(*GoochSettings)

// WithGoochColors sets the four Gooch shading colors.
//
// Parameters:
//   - warm: warm tone
//   - cool: cool tone
//   - highlight: specular highlight color
//   - surface: base surface color
//
// Returns:
//   - GoochBuilderOption: option function to apply
func WithGoochColors(warm, cool, highlight, surface mgl32.Vec3) GoochBuilderOption {
	return func(s *GoochSettings) {
		s.WarmColor = warm
		s.CoolColor = cool
		s.HighlightColor = highlight
		s.SurfaceColor = surface
	}
}

// WithGoochLightAngles sets the polar angles of the Gooch sun.
//
// Parameters:
//   - latitude: azimuth in radians
//   - longitude: angle from +Y in radians
//
// Returns:
//   - GoochBuilderOption: option function to apply
func WithGoochLightAngles(latitude, longitude float32) GoochBuilderOption {
	return func(s *GoochSettings) {
		s.LightLatitude = latitude
		s.LightLongitude = longitude
	}
}
