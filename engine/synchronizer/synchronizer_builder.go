package synchronizer

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithMarkerDrawer sets the overlay that receives the resolved light position each frame.
//
// Parameters:
//   - m: the marker drawer
//
// Returns:
//   - PipelineBuilderOption: a function that sets the marker drawer
func WithMarkerDrawer(m MarkerDrawer) PipelineBuilderOption {
	return func(p *pipeline) {
		p.marker = m
	}
}
