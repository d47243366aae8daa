package uniform_handle

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-params/engine/logger"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle state of a UniformHandle.
type State int

const (
	// StateUninitialized is the state of a new handle; no GPU buffer exists yet.
	StateUninitialized State = iota
	// StateInitialized means the GPU buffer is allocated but nothing has been uploaded.
	StateInitialized
	// StateSubmitted means at least one full upload happened. Submit may repeat.
	StateSubmitted
	// StateDestroyed is terminal.
	StateDestroyed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateSubmitted:
		return "submitted"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// uniformHandle is the unexported implementation of UniformHandle.
type uniformHandle struct {
	id    uuid.UUID
	label string
	state State

	layout  *uniform.Layout
	backend renderer.Backend

	// buffer is the GPU allocated resource, nil outside [Init, Destroy).
	buffer renderer.Buffer
}

// UniformHandle ties a packed parameter Layout to the GPU buffer it is uploaded into.
// The buffer is sized for the layout's slot count and tagged with its frequency at Init;
// neither changes afterwards.
//
// Usage pattern:
//  1. Create the handle with NewUniformHandle(backend, layout)
//  2. Call Init() once at startup; an error is fatal
//  3. Each frame, fill the layout, then call Submit() to upload all of it
//  4. Call Destroy() once at shutdown
//
// Calling Submit outside [Init, Destroy), or Init/Destroy twice, panics with a *ContractViolation.
type UniformHandle interface {
	// ID returns the unique identity of this handle.
	//
	// Returns:
	//   - uuid.UUID: the handle ID
	ID() uuid.UUID

	// Label returns the debug label for this handle.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// State returns the current lifecycle state.
	//
	// Returns:
	//   - State: the current state
	State() State

	// Layout returns the layout this handle uploads.
	//
	// Returns:
	//   - *uniform.Layout: the layout
	Layout() *uniform.Layout

	// Buffer returns the backend buffer, or nil if the handle is not initialized or already destroyed.
	//
	// Returns:
	//   - renderer.Buffer: the buffer or nil
	Buffer() renderer.Buffer

	// Init allocates the GPU buffer.
	//
	// Returns:
	//   - error: an error wrapping renderer.ErrAllocation if the backend could not allocate
	Init() error

	// Submit uploads the whole layout to the GPU buffer. Partial updates are not supported.
	Submit()

	// Destroy releases the GPU buffer. It must be called exactly once.
	Destroy()
}

var _ UniformHandle = &uniformHandle{}

// NewUniformHandle creates a handle for layout on backend. No GPU resource is allocated until Init.
//
// Parameters:
//   - backend: the backend that will own the buffer
//   - layout: the packed parameter layout to upload
//   - options: a variadic list of options to configure the handle
//
// Returns:
//   - UniformHandle: a new handle in StateUninitialized
func NewUniformHandle(backend renderer.Backend, layout *uniform.Layout, options ...UniformHandleBuilderOption) UniformHandle {
	h := &uniformHandle{
		id:      uuid.New(),
		label:   layout.Name(),
		layout:  layout,
		backend: backend,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *uniformHandle) ID() uuid.UUID {
	return h.id
}

func (h *uniformHandle) Label() string {
	return h.label
}

func (h *uniformHandle) State() State {
	return h.state
}

func (h *uniformHandle) Layout() *uniform.Layout {
	return h.layout
}

func (h *uniformHandle) Buffer() renderer.Buffer {
	return h.buffer
}

func (h *uniformHandle) Init() error {
	if h.state != StateUninitialized {
		h.violate("Init")
	}

	buf, err := h.backend.CreateBuffer(renderer.BufferDescriptor{
		Label:     h.label,
		SlotCount: h.layout.SlotCount(),
		Frequency: h.layout.Frequency(),
	})
	if err != nil {
		return fmt.Errorf("init uniform %q (%s): %w", h.label, h.id, err)
	}

	h.buffer = buf
	h.state = StateInitialized
	logger.Log.Debug("uniform handle initialized",
		zap.String("label", h.label),
		zap.Stringer("id", h.id),
		zap.Int("slots", h.layout.SlotCount()),
		zap.Stringer("frequency", h.layout.Frequency()),
		zap.String("wgsl", h.layout.Source()),
	)
	return nil
}

func (h *uniformHandle) Submit() {
	if h.state != StateInitialized && h.state != StateSubmitted {
		h.violate("Submit")
	}
	h.buffer.Write(h.layout.Bytes())
	h.state = StateSubmitted
}

func (h *uniformHandle) Destroy() {
	if h.state == StateDestroyed {
		h.violate("Destroy")
	}
	if h.buffer != nil {
		h.buffer.Release()
		h.buffer = nil
	}
	h.state = StateDestroyed
	logger.Log.Debug("uniform handle destroyed", zap.String("label", h.label), zap.Stringer("id", h.id))
}

func (h *uniformHandle) violate(op string) {
	panic(&ContractViolation{Handle: h.label, Op: op, State: h.state})
}
