// Package predicate defines named boolean functions over a state, used
// either as invariants (must hold everywhere) or as interesting-state
// probes (redirect the search when matched).
package predicate

import (
	"modelcheck/machine"
	"modelcheck/state"
)

// Predicate is a named boolean function over a state.
type Predicate struct {
	Name  string
	Match func(state.State) bool
}

// Invariant builds a Predicate intended to be checked at every visited
// state.
func Invariant(name string, match func(state.State) bool) Predicate {
	return Predicate{Name: name, Match: match}
}

// Interesting builds a Predicate intended to redirect the search when
// matched, per the checker's guided-search mode.
func Interesting(name string, match func(state.State) bool) Predicate {
	return Predicate{Name: name, Match: match}
}

// ValidMessages is the invariant the engine auto-adds to every model: it
// fails whenever some machine has recorded machine.BadMessageType.
func ValidMessages() Predicate {
	return Invariant("Valid messages", func(s state.State) bool {
		for _, m := range s.Machines {
			if m.Error() == machine.BadMessageType {
				return false
			}
		}
		return true
	})
}

// Eventually adapts pred so that it is only evaluated on terminating
// states (no in-flight messages); it returns true for every other
// state. Useful for invariants that should only hold once a run has run
// to completion, such as "every machine that decided, decided the same
// value".
func Eventually(pred func(state.State) bool) func(state.State) bool {
	return func(s state.State) bool {
		if !s.IsTerminating() {
			return true
		}
		return pred(s)
	}
}

// ForAllMachines reports whether cond holds for every machine in s.
func ForAllMachines(s state.State, cond func(machine.Machine) bool) bool {
	for _, m := range s.Machines {
		if !cond(m) {
			return false
		}
	}
	return true
}
