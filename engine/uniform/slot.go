package uniform

import "fmt"

// SlotFloats is the number of float32 lanes in one parameter slot.
const SlotFloats = 4

// SlotSize is the size of one parameter slot in bytes.
const SlotSize = SlotFloats * 4

// Slot is the atomic addressable unit of a packed parameter buffer: exactly four floats,
// matching a vec4<f32> on the GPU.
type Slot [SlotFloats]float32

// Frequency describes how often a parameter buffer is expected to change. It is fixed when the
// buffer is created and cannot be changed afterwards.
type Frequency int

const (
	// FrequencyDraw marks a buffer that may be rewritten for every draw call.
	FrequencyDraw Frequency = iota

	// FrequencyFrame marks a buffer that is rewritten once per frame and shared by all draws.
	FrequencyFrame
)

// String implements fmt.Stringer.
func (f Frequency) String() string {
	switch f {
	case FrequencyDraw:
		return "draw"
	case FrequencyFrame:
		return "frame"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// FieldKind is the shape of a named field inside a layout.
type FieldKind int

const (
	// KindScalar is a single float lane.
	KindScalar FieldKind = iota + 1

	// KindVec3 is three consecutive lanes within one slot.
	KindVec3

	// KindVec4 is a whole slot.
	KindVec4
)

// Width returns the number of float lanes the kind occupies.
//
// Returns:
//   - int: 1, 3 or 4
func (k FieldKind) Width() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "f32"
	case KindVec3:
		return "vec3<f32>"
	case KindVec4:
		return "vec4<f32>"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field names a span of float lanes inside a layout's backing array.
type Field struct {
	// Name is the unique identifier used by the accessor methods.
	Name string
	// Offset is the index of the first lane in the flat float array.
	Offset int
	// Kind is the shape of the field and determines how many lanes it spans.
	Kind FieldKind
}

// Width returns the number of float lanes the field spans.
func (f Field) Width() int {
	return f.Kind.Width()
}

// End returns the flat index one past the last lane of the field.
func (f Field) End() int {
	return f.Offset + f.Width()
}

// Slot returns the index of the slot the field starts in.
func (f Field) Slot() int {
	return f.Offset / SlotFloats
}

// Lane returns the lane within its slot where the field starts.
func (f Field) Lane() int {
	return f.Offset % SlotFloats
}

// Scalar declares a single-lane field at the given slot and lane.
//
// Parameters:
//   - name: the field name
//   - slot: the slot index
//   - lane: the lane within the slot (0-3)
//
// Returns:
//   - Field: the field descriptor
func Scalar(name string, slot, lane int) Field {
	return Field{Name: name, Offset: slot*SlotFloats + lane, Kind: KindScalar}
}

// Vec3 declares a three-lane field starting at the given slot and lane. A vec3 must not cross a
// slot boundary, so lane must be 0 or 1; layout construction rejects anything else.
//
// Parameters:
//   - name: the field name
//   - slot: the slot index
//   - lane: the starting lane within the slot (0 or 1)
//
// Returns:
//   - Field: the field descriptor
func Vec3(name string, slot, lane int) Field {
	return Field{Name: name, Offset: slot*SlotFloats + lane, Kind: KindVec3}
}

// Vec4 declares a field covering a whole slot.
//
// Parameters:
//   - name: the field name
//   - slot: the slot index
//
// Returns:
//   - Field: the field descriptor
func Vec4(name string, slot int) Field {
	return Field{Name: name, Offset: slot * SlotFloats, Kind: KindVec4}
}
