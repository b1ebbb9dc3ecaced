package model

import (
	"fmt"

	"modelcheck/state"
)

// ViolationError is returned by Run when some invariant failed on a
// reachable state. Its Error() renders the violation line followed by
// the full causal trace, matching the checker's specified violation
// output exactly.
type ViolationError struct {
	Invariant string
	State     state.State
}

func (v *ViolationError) Error() string {
	return fmt.Sprintf("INVARIANT VIOLATED: %s\n%s", v.Invariant, v.State.HistoryString())
}
