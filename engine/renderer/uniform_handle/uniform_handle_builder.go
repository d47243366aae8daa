package uniform_handle

import "github.com/google/uuid"

// UniformHandleBuilderOption is a functional option used to configure a UniformHandle during construction.
type UniformHandleBuilderOption func(*uniformHandle)

// WithID sets the handle identity instead of generating a random one.
//
// Parameters:
//   - id: the handle ID
//
// Returns:
//   - UniformHandleBuilderOption: a function that sets the handle ID
func WithID(id uuid.UUID) UniformHandleBuilderOption {
	return func(h *uniformHandle) {
		h.id = id
	}
}

// WithLabel overrides the debug label. By default the label is the layout name.
//
// Parameters:
//   - label: the debug label for this handle
//
// Returns:
//   - UniformHandleBuilderOption: a function that sets the label
func WithLabel(label string) UniformHandleBuilderOption {
	return func(h *uniformHandle) {
		h.label = label
	}
}
