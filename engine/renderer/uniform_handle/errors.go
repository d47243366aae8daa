package uniform_handle

import (
	"errors"
	"fmt"
)

// ErrContractViolation is matched (via errors.Is) by every panic value a UniformHandle raises
// when it is driven out of order.
var ErrContractViolation = errors.New("uniform handle contract violation")

// ContractViolation is the panic value of an out-of-order handle operation, such as Submit
// before Init or after Destroy. These are programming errors, never runtime conditions.
type ContractViolation struct {
	// Handle is the label of the offending handle.
	Handle string
	// Op is the operation that was called.
	Op string
	// State is the state the handle was in when Op was called.
	State State
}

// Error implements error.
func (c *ContractViolation) Error() string {
	return fmt.Sprintf("%s on handle %q in state %s", c.Op, c.Handle, c.State)
}

// Is reports whether target is ErrContractViolation.
func (c *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}
