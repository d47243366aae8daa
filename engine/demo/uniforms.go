package demo

import (
	"github.com/Carmen-Shannon/oxy-params/engine/renderer"
	"github.com/Carmen-Shannon/oxy-params/engine/renderer/uniform_handle"
	"github.com/Carmen-Shannon/oxy-params/engine/uniform"
)

// uniforms owns the handles of one demo. Handles are initialized in order and destroyed in
// reverse order; a failed init destroys whatever it already allocated.
type uniforms struct {
	layouts []*uniform.Layout
	handles []uniform_handle.UniformHandle
}

func newUniforms(layouts ...*uniform.Layout) *uniforms {
	return &uniforms{layouts: layouts}
}

// init allocates one handle per layout. A second init, even after destroy, is a contract
// violation: handles are allocated once and released once.
func (u *uniforms) init(backend renderer.Backend) error {
	if len(u.handles) > 0 {
		panic(&uniform_handle.ContractViolation{
			Handle: u.handles[0].Label(),
			Op:     "Init",
			State:  u.handles[0].State(),
		})
	}
	for _, l := range u.layouts {
		h := uniform_handle.NewUniformHandle(backend, l)
		u.handles = append(u.handles, h)
		if err := h.Init(); err != nil {
			u.destroy()
			return err
		}
	}
	return nil
}

// submit uploads every layout. Before init it panics like a handle submitted before Init would.
func (u *uniforms) submit() {
	if len(u.handles) == 0 {
		panic(&uniform_handle.ContractViolation{
			Handle: u.layouts[0].Name(),
			Op:     "Submit",
			State:  uniform_handle.StateUninitialized,
		})
	}
	for _, h := range u.handles {
		h.Submit()
	}
}

// destroy releases every handle not yet destroyed. Destroyed handles are kept so a later
// submit is reported as a contract violation.
func (u *uniforms) destroy() {
	for i := len(u.handles) - 1; i >= 0; i-- {
		if u.handles[i].State() != uniform_handle.StateDestroyed {
			u.handles[i].Destroy()
		}
	}
}
