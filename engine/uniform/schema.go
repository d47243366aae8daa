package uniform

// Uniform names the shipped layouts are bound as.
const (
	ParamsUniformName = "u_params"
	TimeUniformName   = "u_time"
)

// Field names of the material + light layout.
//
//	slot 0: albedo.xyz          roughness
//	slot 1: f0.xyz              metallic
//	slot 2: light_position.xyz  light_radius_min
//	slot 3: light_color.xyz     light_radius_max
const (
	FieldAlbedo         = "albedo"
	FieldRoughness      = "roughness"
	FieldF0             = "f0"
	FieldMetallic       = "metallic"
	FieldLightPosition  = "light_position"
	FieldLightRadiusMin = "light_radius_min"
	FieldLightColor     = "light_color"
	FieldLightRadiusMax = "light_radius_max"
)

// Material slots occupy the first two slots of the material + light layout.
const (
	MaterialSlotOffset = 0
	MaterialSlotCount  = 2
)

// Field names of the Gooch layout. The light direction is split across the w lanes of slots
// 1 to 3 so the whole parameter block fits in four slots.
//
//	slot 0: time             warm_color.xyz
//	slot 1: cool_color.xyz   light_dir_x
//	slot 2: highlight.xyz    light_dir_y
//	slot 3: surface.xyz      light_dir_z
const (
	FieldTime           = "time"
	FieldWarmColor      = "warm_color"
	FieldCoolColor      = "cool_color"
	FieldLightDirX      = "light_dir_x"
	FieldHighlightColor = "highlight_color"
	FieldLightDirY      = "light_dir_y"
	FieldSurfaceColor   = "surface_color"
	FieldLightDirZ      = "light_dir_z"
)

// FieldTimeReserved pads the time layout's single slot after the time lane.
const FieldTimeReserved = "time_reserved"

// MaterialLightFields is the field table of the material + light layout.
var MaterialLightFields = []Field{
	Vec3(FieldAlbedo, 0, 0), Scalar(FieldRoughness, 0, 3),
	Vec3(FieldF0, 1, 0), Scalar(FieldMetallic, 1, 3),
	Vec3(FieldLightPosition, 2, 0), Scalar(FieldLightRadiusMin, 2, 3),
	Vec3(FieldLightColor, 3, 0), Scalar(FieldLightRadiusMax, 3, 3),
}

// GoochFields is the field table of the Gooch layout.
var GoochFields = []Field{
	Scalar(FieldTime, 0, 0), Vec3(FieldWarmColor, 0, 1),
	Vec3(FieldCoolColor, 1, 0), Scalar(FieldLightDirX, 1, 3),
	Vec3(FieldHighlightColor, 2, 0), Scalar(FieldLightDirY, 2, 3),
	Vec3(FieldSurfaceColor, 3, 0), Scalar(FieldLightDirZ, 3, 3),
}

// TimeFields is the field table of the single-slot time layout.
var TimeFields = []Field{
	Scalar(FieldTime, 0, 0), Vec3(FieldTimeReserved, 0, 1),
}

// NewMaterialLightLayout returns a zeroed four-slot material + light layout bound as u_params
// and updated per draw.
func NewMaterialLightLayout() *Layout {
	return MustLayout(ParamsUniformName, FrequencyDraw, MaterialLightFields...)
}

// NewGoochLayout returns a zeroed four-slot Gooch layout bound as u_params and updated per draw.
func NewGoochLayout() *Layout {
	return MustLayout(ParamsUniformName, FrequencyDraw, GoochFields...)
}

// NewTimeLayout returns a zeroed single-slot time layout bound as u_time and updated per frame.
func NewTimeLayout() *Layout {
	return MustLayout(TimeUniformName, FrequencyFrame, TimeFields...)
}
