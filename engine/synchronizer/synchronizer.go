// Package synchronizer keeps packed parameter layouts in step with the editable settings.
//
// Once per frame, before anything is uploaded, Update copies the settings into the structured
// layout, resolves the light's polar placement into Cartesian form and stamps the frame time
// into the separate per-frame time layout. Derived values such as the light position exist only
// in the layout and in the overlay callback; nothing here keeps them as state.
package synchronizer

import (
	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/go-gl/mathgl/mgl32"
)

// MarkerDrawer receives the resolved light position each frame so a debug overlay can draw it.
type MarkerDrawer interface {
	// DrawMarker draws a marker at position in the given pass.
	//
	// Parameters:
	//   - pass: the pass being synchronized
	//   - position: the resolved world-space light position
	DrawMarker(pass common.PassID, position mgl32.Vec3)
}

// MarkerDrawerFunc adapts a plain function to MarkerDrawer.
type MarkerDrawerFunc func(pass common.PassID, position mgl32.Vec3)

// DrawMarker calls f(pass, position).
func (f MarkerDrawerFunc) DrawMarker(pass common.PassID, position mgl32.Vec3) {
	f(pass, position)
}

// Pipeline is the per-frame settings-to-layout synchronizer.
type Pipeline interface {
	// Update fills the parameter and time layouts for the current frame. It runs synchronously
	// and always in the same order: material, light attributes, light geometry (and overlay
	// marker), time. Calling it twice with unchanged settings and time produces identical layouts.
	//
	// Parameters:
	//   - pass: the pass the overlay marker is drawn in
	//   - time: the frame time value stamped into the time layout
	Update(pass common.PassID, time float32)

	// Params returns the structured parameter layout.
	//
	// Returns:
	//   - *uniform.Layout: the layout filled by the writer
	Params() *uniform.Layout

	// Time returns the single-slot per-frame time layout.
	//
	// Returns:
	//   - *uniform.Layout: the time layout
	Time() *uniform.Layout
}

// pipeline is the unexported implementation of Pipeline.
type pipeline struct {
	writer Writer
	time   *uniform.Layout
	marker MarkerDrawer
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a Pipeline driving writer.
//
// Parameters:
//   - writer: the demo-specific layout writer
//   - options: a variadic list of PipelineBuilderOption functions
//
// Returns:
//   - Pipeline: the pipeline
func NewPipeline(writer Writer, options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		writer: writer,
		time:   uniform.NewTimeLayout(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipeline) Update(pass common.PassID, time float32) {
	p.writer.WriteMaterial()
	p.writer.WriteLight()

	res := p.writer.WriteGeometry()
	if p.marker != nil {
		p.marker.DrawMarker(pass, res.Position)
	}

	p.time.SetScalar(uniform.FieldTime, time)
	p.writer.WriteTime(time)
}

func (p *pipeline) Params() *uniform.Layout {
	return p.writer.Layout()
}

func (p *pipeline) Time() *uniform.Layout {
	return p.time
}
