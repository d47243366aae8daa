package uniform

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidLayout is returned when a field table does not exactly tile its slot sequence.
var ErrInvalidLayout = errors.New("invalid parameter layout")

// Layout is a fixed-size packed parameter buffer: one flat float32 array of N slots with a
// table of named fields overlaid on it. The field table is the single source of truth for the
// mapping; every accessor goes through it, so a write through a named field is visible at the
// corresponding flat index and vice versa.
//
// The slot count is derived from the field table at construction and never changes.
type Layout struct {
	name      string
	frequency Frequency

	fields map[string]Field
	order  []Field

	params []float32
}

// NewLayout builds a Layout from a field table. The union of the field spans must cover every
// lane of a whole number of slots exactly once: no gaps, no overlaps, no vec3 crossing a slot
// boundary.
//
// Parameters:
//   - name: the uniform name the buffer is bound as (e.g. "u_params")
//   - frequency: the update frequency, fixed for the buffer's lifetime
//   - fields: the field table, in declaration order
//
// Returns:
//   - *Layout: the zero-filled layout
//   - error: an error wrapping ErrInvalidLayout if the table does not tile the buffer
func NewLayout(name string, frequency Frequency, fields ...Field) (*Layout, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: layout %q declares no fields", ErrInvalidLayout, name)
	}

	total := 0
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: layout %q has an unnamed field at offset %d", ErrInvalidLayout, name, f.Offset)
		}
		if f.Width() == 0 {
			return nil, fmt.Errorf("%w: field %q has unknown kind %v", ErrInvalidLayout, f.Name, f.Kind)
		}
		if f.Offset < 0 {
			return nil, fmt.Errorf("%w: field %q has negative offset %d", ErrInvalidLayout, f.Name, f.Offset)
		}
		if f.Lane()+f.Width() > SlotFloats {
			return nil, fmt.Errorf("%w: field %q (%v at lane %d) crosses a slot boundary", ErrInvalidLayout, f.Name, f.Kind, f.Lane())
		}
		if _, dup := byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: field %q declared twice", ErrInvalidLayout, f.Name)
		}
		byName[f.Name] = f
		total = max(total, f.End())
	}

	if total%SlotFloats != 0 {
		return nil, fmt.Errorf("%w: layout %q ends at lane %d, not on a slot boundary", ErrInvalidLayout, name, total)
	}

	owner := make([]string, total)
	for _, f := range fields {
		for i := f.Offset; i < f.End(); i++ {
			if owner[i] != "" {
				return nil, fmt.Errorf("%w: fields %q and %q overlap at index %d", ErrInvalidLayout, owner[i], f.Name, i)
			}
			owner[i] = f.Name
		}
	}
	for i, o := range owner {
		if o == "" {
			return nil, fmt.Errorf("%w: layout %q leaves index %d (slot %d lane %d) uncovered", ErrInvalidLayout, name, i, i/SlotFloats, i%SlotFloats)
		}
	}

	order := make([]Field, len(fields))
	copy(order, fields)

	return &Layout{
		name:      name,
		frequency: frequency,
		fields:    byName,
		order:     order,
		params:    make([]float32, total),
	}, nil
}

// MustLayout is like NewLayout but panics on an invalid field table. It is meant for the
// package-level schemas whose tables are fixed at compile time.
func MustLayout(name string, frequency Frequency, fields ...Field) *Layout {
	l, err := NewLayout(name, frequency, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the uniform name of the layout.
func (l *Layout) Name() string {
	return l.name
}

// Frequency returns the update frequency the layout was declared with.
func (l *Layout) Frequency() Frequency {
	return l.frequency
}

// SlotCount returns the number of 4-float slots in the buffer.
func (l *Layout) SlotCount() int {
	return len(l.params) / SlotFloats
}

// Len returns the number of float lanes in the buffer (SlotCount()*4).
func (l *Layout) Len() int {
	return len(l.params)
}

// Size returns the size of the packed buffer in bytes.
func (l *Layout) Size() int {
	return len(l.params) * common.Float32Size
}

// Fields returns a copy of the field table in declaration order.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.order))
	copy(out, l.order)
	return out
}

// Field looks up a field descriptor by name.
//
// Parameters:
//   - name: the field name
//
// Returns:
//   - Field: the descriptor, zero if not found
//   - bool: whether the field exists
func (l *Layout) Field(name string) (Field, bool) {
	f, ok := l.fields[name]
	return f, ok
}

// Scalar reads a scalar field.
//
// Parameters:
//   - name: the field name; must name a KindScalar field
//
// Returns:
//   - float32: the current value
func (l *Layout) Scalar(name string) float32 {
	f := l.mustField(name, KindScalar)
	return l.params[f.Offset]
}

// SetScalar writes a scalar field.
//
// Parameters:
//   - name: the field name; must name a KindScalar field
//   - v: the value to store
func (l *Layout) SetScalar(name string, v float32) {
	f := l.mustField(name, KindScalar)
	l.params[f.Offset] = v
}

// Vec3 reads a three-lane field.
//
// Parameters:
//   - name: the field name; must name a KindVec3 field
//
// Returns:
//   - mgl32.Vec3: the current value
func (l *Layout) Vec3(name string) mgl32.Vec3 {
	f := l.mustField(name, KindVec3)
	return mgl32.Vec3{l.params[f.Offset], l.params[f.Offset+1], l.params[f.Offset+2]}
}

// SetVec3 writes a three-lane field.
//
// Parameters:
//   - name: the field name; must name a KindVec3 field
//   - v: the value to store
func (l *Layout) SetVec3(name string, v mgl32.Vec3) {
	f := l.mustField(name, KindVec3)
	copy(l.params[f.Offset:f.End()], v[:])
}

// Vec4 reads a whole-slot field.
//
// Parameters:
//   - name: the field name; must name a KindVec4 field
//
// Returns:
//   - mgl32.Vec4: the current value
func (l *Layout) Vec4(name string) mgl32.Vec4 {
	f := l.mustField(name, KindVec4)
	var v mgl32.Vec4
	copy(v[:], l.params[f.Offset:f.End()])
	return v
}

// SetVec4 writes a whole-slot field.
//
// Parameters:
//   - name: the field name; must name a KindVec4 field
//   - v: the value to store
func (l *Layout) SetVec4(name string, v mgl32.Vec4) {
	f := l.mustField(name, KindVec4)
	copy(l.params[f.Offset:f.End()], v[:])
}

// At reads the flat lane at index i.
//
// Parameters:
//   - i: flat index in [0, Len())
//
// Returns:
//   - float32: the lane value
func (l *Layout) At(i int) float32 {
	return l.params[i]
}

// Set writes the flat lane at index i.
//
// Parameters:
//   - i: flat index in [0, Len())
//   - v: the value to store
func (l *Layout) Set(i int, v float32) {
	l.params[i] = v
}

// Slot returns a copy of slot i.
//
// Parameters:
//   - i: slot index in [0, SlotCount())
//
// Returns:
//   - Slot: the four lanes of the slot
func (l *Layout) Slot(i int) Slot {
	var s Slot
	copy(s[:], l.params[i*SlotFloats:(i+1)*SlotFloats])
	return s
}

// SetSlot overwrites slot i.
//
// Parameters:
//   - i: slot index in [0, SlotCount())
//   - s: the new lanes
func (l *Layout) SetSlot(i int, s Slot) {
	copy(l.params[i*SlotFloats:(i+1)*SlotFloats], s[:])
}

// Slots returns a copy of every slot in order.
func (l *Layout) Slots() []Slot {
	out := make([]Slot, l.SlotCount())
	for i := range out {
		out[i] = l.Slot(i)
	}
	return out
}

// Floats returns a copy of the flat float array.
func (l *Layout) Floats() []float32 {
	out := make([]float32, len(l.params))
	copy(out, l.params)
	return out
}

// Bytes encodes the whole buffer as little-endian float32 values, ready for upload.
// Partial uploads are not supported, so this always covers every slot.
func (l *Layout) Bytes() []byte {
	return common.Float32sToBytes(l.params)
}

// Reset zero-fills every lane.
func (l *Layout) Reset() {
	clear(l.params)
}

// mustField resolves a field by name and checks its kind. A missing field or wrong kind is a
// programming error in the caller, not a runtime condition, so it panics.
func (l *Layout) mustField(name string, kind FieldKind) Field {
	f, ok := l.fields[name]
	if !ok {
		panic(fmt.Sprintf("uniform: layout %q has no field %q", l.name, name))
	}
	if f.Kind != kind {
		panic(fmt.Sprintf("uniform: field %q of layout %q is %v, accessed as %v", name, l.name, f.Kind, kind))
	}
	return f
}
