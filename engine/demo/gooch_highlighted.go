package demo

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-params/engine/logger"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/settings"
	"github.com/Carmen-Shannon/oxy-params/engine/synchronizer"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	goochEye    = mgl32.Vec3{0, 1, -2.5}
	goochCenter = mgl32.Vec3{0, 1, 0}
)

// GoochHighlighted is the Gooch shading demo: a mesh on a turntable, shaded between a warm and
// a cool tone by a directional light. Time and the light direction travel inside u_params.
type GoochHighlighted struct {
	settings *settings.GoochSettings
	editor   SettingsEditor[*settings.GoochSettings]
	marker   synchronizer.MarkerDrawer

	pipeline synchronizer.Pipeline
	uniforms *uniforms

	view  pass.ViewTransform
	model mgl32.Mat4
}

var _ Demo = &GoochHighlighted{}

// NewGoochHighlighted creates the Gooch demo with default settings, then applies options.
//
// Parameters:
//   - options: a variadic list of GoochOption functions
//
// Returns:
//   - *GoochHighlighted: the demo, not yet initialized
func NewGoochHighlighted(options ...GoochOption) *GoochHighlighted {
	d := &GoochHighlighted{
		settings: settings.NewGoochSettings(),
		model:    mgl32.Ident4(),
	}
	for _, opt := range options {
		opt(d)
	}
	var pipelineOpts []synchronizer.PipelineBuilderOption
	if d.marker != nil {
		pipelineOpts = append(pipelineOpts, synchronizer.WithMarkerDrawer(d.marker))
	}
	d.pipeline = synchronizer.NewPipeline(synchronizer.NewGoochWriter(d.settings), pipelineOpts...)
	d.uniforms = newUniforms(d.pipeline.Params())
	return d
}

func (d *GoochHighlighted) Name() string {
	return "gooch-highlighted"
}

func (d *GoochHighlighted) Init(backend renderer.Backend) error {
	if err := d.uniforms.init(backend); err != nil {
		return fmt.Errorf("%s: %w", d.Name(), err)
	}
	logger.Log.Info("demo initialized", zap.String("demo", d.Name()), zap.Stringer("backend", backend.Type()))
	return nil
}

func (d *GoochHighlighted) Update(frame Frame) {
	if d.editor != nil {
		d.editor(d.settings, frame)
	}

	d.pipeline.Update(frame.Pass.ID, frame.Elapsed)

	d.view = frame.Pass.Transform(pass.LookAt(goochEye, goochCenter))
	d.model = pass.TurntableModel(frame.Elapsed)

	d.uniforms.submit()
}

func (d *GoochHighlighted) View() pass.ViewTransform {
	return d.view
}

func (d *GoochHighlighted) Model() mgl32.Mat4 {
	return d.model
}

func (d *GoochHighlighted) Shutdown() {
	d.uniforms.destroy()
	logger.Log.Info("demo shut down", zap.String("demo", d.Name()))
}

// Settings returns the live settings the editor mutates.
func (d *GoochHighlighted) Settings() *settings.GoochSettings {
	return d.settings
}

// Pipeline returns the parameter synchronizer.
func (d *GoochHighlighted) Pipeline() synchronizer.Pipeline {
	return d.pipeline
}

// GoochOption is a functional option used to configure a GoochHighlighted demo during construction.
type GoochOption func(*GoochHighlighted)

// WithGoochSettings replaces the default settings.
//
// Parameters:
//   - s: the settings to edit and synchronize
//
// Returns:
//   - GoochOption: a function that sets the settings
func WithGoochSettings(s *settings.GoochSettings) GoochOption {
	return func(d *GoochHighlighted) {
		d.settings = s
	}
}

// WithGoochSettingsEditor sets the per-frame settings editor.
//
// Parameters:
//   - e: the editor
//
// Returns:
//   - GoochOption: a function that sets the editor
func WithGoochSettingsEditor(e SettingsEditor[*settings.GoochSettings]) GoochOption {
	return func(d *GoochHighlighted) {
		d.editor = e
	}
}

// WithGoochMarkerDrawer sets the debug overlay that receives the resolved sun placement. The sun
// has no distance, so the marker gets the unit vector toward it.
//
// Parameters:
//   - m: the marker drawer
//
// Returns:
//   - GoochOption: a function that sets the marker drawer
func WithGoochMarkerDrawer(m synchronizer.MarkerDrawer) GoochOption {
	return func(d *GoochHighlighted) {
		d.marker = m
	}
}
