package demo

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-params/engine/camera"
	"github.com/Carmen-Shannon/oxy-params/engine/logger"
	"github.com/Carmen-Shannon/oxy-params/engine/pass"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/settings"
	"github.com/Carmen-Shannon/oxy-params/engine/synchronizer"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// lightsCameraDeltaScale slows the fly camera down to a comfortable pace.
	lightsCameraDeltaScale = 0.15
	// lightsGroundScale is the half-extent of the ground slab.
	lightsGroundScale = 10
)

// LightsBasic is the PBR demo: a metal/roughness ground lit by one point light placed in polar
// form. The light position is resolved every frame and the frame delta is uploaded as u_time.
type LightsBasic struct {
	settings *settings.Settings
	camera   camera.Camera
	editor   SettingsEditor[*settings.Settings]
	marker   synchronizer.MarkerDrawer

	pipeline synchronizer.Pipeline
	uniforms *uniforms

	view  pass.ViewTransform
	model mgl32.Mat4
}

var _ Demo = &LightsBasic{}

// NewLightsBasic creates the PBR demo with default settings and a camera at (0, 3, -6) pitched
// down by 0.3 radians, then applies options.
//
// Parameters:
//   - options: a variadic list of LightsBasicOption functions
//
// Returns:
//   - *LightsBasic: the demo, not yet initialized
func NewLightsBasic(options ...LightsBasicOption) *LightsBasic {
	d := &LightsBasic{
		settings: settings.NewSettings(),
		camera: camera.NewCamera(
			camera.WithPosition(mgl32.Vec3{0, 3, -6}),
			camera.WithAngles(0.01, -0.3),
		),
		model: pass.GroundModel(lightsGroundScale),
	}
	for _, opt := range options {
		opt(d)
	}

	var pipelineOpts []synchronizer.PipelineBuilderOption
	if d.marker != nil {
		pipelineOpts = append(pipelineOpts, synchronizer.WithMarkerDrawer(d.marker))
	}
	d.pipeline = synchronizer.NewPipeline(synchronizer.NewMaterialLightWriter(d.settings), pipelineOpts...)
	d.uniforms = newUniforms(d.pipeline.Params(), d.pipeline.Time())
	return d
}

func (d *LightsBasic) Name() string {
	return "lights-basic"
}

func (d *LightsBasic) Init(backend renderer.Backend) error {
	if err := d.uniforms.init(backend); err != nil {
		return fmt.Errorf("%s: %w", d.Name(), err)
	}
	logger.Log.Info("demo initialized", zap.String("demo", d.Name()), zap.Stringer("backend", backend.Type()))
	return nil
}

func (d *LightsBasic) Update(frame Frame) {
	if d.editor != nil {
		d.editor(d.settings, frame)
	}

	d.pipeline.Update(frame.Pass.ID, frame.Delta)

	d.camera.Update(frame.Delta*lightsCameraDeltaScale, frame.Input)
	d.view = frame.Pass.Transform(d.camera.ViewMatrix())

	d.uniforms.submit()
}

func (d *LightsBasic) View() pass.ViewTransform {
	return d.view
}

func (d *LightsBasic) Model() mgl32.Mat4 {
	return d.model
}

func (d *LightsBasic) Shutdown() {
	d.uniforms.destroy()
	logger.Log.Info("demo shut down", zap.String("demo", d.Name()))
}

// Settings returns the live settings the editor mutates.
func (d *LightsBasic) Settings() *settings.Settings {
	return d.settings
}

// Camera returns the fly camera.
func (d *LightsBasic) Camera() camera.Camera {
	return d.camera
}

// Pipeline returns the parameter synchronizer.
func (d *LightsBasic) Pipeline() synchronizer.Pipeline {
	return d.pipeline
}

// LightsBasicOption is a functional option used to configure a LightsBasic demo during construction.
type LightsBasicOption func(*LightsBasic)

// WithSettings replaces the default settings.
//
// Parameters:
//   - s: the settings to edit and synchronize
//
// Returns:
//   - LightsBasicOption: a function that sets the settings
func WithSettings(s *settings.Settings) LightsBasicOption {
	return func(d *LightsBasic) {
		d.settings = s
	}
}

// WithSettingsEditor sets the per-frame settings editor.
//
// Parameters:
//   - e: the editor
//
// Returns:
//   - LightsBasicOption: a function that sets the editor
func WithSettingsEditor(e SettingsEditor[*settings.Settings]) LightsBasicOption {
	return func(d *LightsBasic) {
		d.editor = e
	}
}

// WithMarkerDrawer sets the debug overlay that receives the resolved light position.
//
// Parameters:
//   - m: the marker drawer
//
// Returns:
//   - LightsBasicOption: a function that sets the marker drawer
func WithMarkerDrawer(m synchronizer.MarkerDrawer) LightsBasicOption {
	return func(d *LightsBasic) {
		d.marker = m
	}
}

// WithCamera replaces the default camera.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - LightsBasicOption: a function that sets the camera
func WithCamera(c camera.Camera) LightsBasicOption {
	return func(d *LightsBasic) {
		d.camera = c
	}
}
