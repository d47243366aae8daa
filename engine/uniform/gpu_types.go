package uniform

import (
	"fmt"
	"strings"
)

// Source returns a WGSL declaration matching the layout byte for byte. The buffer is declared
// as an array of vec4<f32> (the slot sequence), which is valid under WGSL uniform alignment
// rules for every field table; each named field is listed in a comment with its slot and lanes
// so shader authors can unpack it.
//
// Example output for the time layout:
//
//	// u_time: 1 slot(s), 16 bytes, updated per frame
//	//   time           slot 0 .x     f32
//	//   time_reserved  slot 0 .yzw   vec3<f32>
//	struct UTime {
//	    slots: array<vec4<f32>, 1>,
//	};
//
// Returns:
//   - string: the WGSL source
func (l *Layout) Source() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s: %d slot(s), %d bytes, updated per %s\n", l.name, l.SlotCount(), l.Size(), l.frequency)

	width := 0
	for _, f := range l.order {
		width = max(width, len(f.Name))
	}
	for _, f := range l.order {
		fmt.Fprintf(&sb, "//   %-*s  slot %d .%-4s  %v\n", width, f.Name, f.Slot(), swizzle(f), f.Kind)
	}

	fmt.Fprintf(&sb, "struct %s {\n", structName(l.name))
	fmt.Fprintf(&sb, "    slots: array<vec4<f32>, %d>,\n", l.SlotCount())
	sb.WriteString("};\n")
	return sb.String()
}

// swizzle returns the lane selector (e.g. "xyz", "w") a field occupies within its slot.
func swizzle(f Field) string {
	const lanes = "xyzw"
	return lanes[f.Lane() : f.Lane()+f.Width()]
}

// structName converts a uniform name like "u_params" into a WGSL type name like "UParams".
func structName(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	if sb.Len() == 0 {
		return "Params"
	}
	return sb.String()
}
