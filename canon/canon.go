// Package canon implements the identity-blind projection used to
// collapse states that differ only by a renaming of same-typed
// machines (plus the correspondingly relabeled in-flight messages).
package canon

import (
	"strings"

	"golang.org/x/exp/slices"

	"modelcheck/machine"
	"modelcheck/msg"
	"modelcheck/state"
)

// logicalMachine is one machine's identity-blind projection: its
// logical identity plus the messages attributed to it by either
// endpoint, id-stripped and sorted by logical compare.
type logicalMachine struct {
	m        machine.Machine
	outgoing []msg.Message
	incoming []msg.Message
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func compareMessageSlice(a, b []msg.Message) int {
	if c := sign(len(a) - len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := msg.LogicalCompare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareLogicalMachine(a, b logicalMachine) int {
	if c := machine.LogicalCompare(a.m, b.m); c != 0 {
		return c
	}
	if c := compareMessageSlice(a.outgoing, b.outgoing); c != 0 {
		return c
	}
	return compareMessageSlice(a.incoming, b.incoming)
}

// Canonical is the identity-blind fingerprint of a state: the sequence
// of logical machines, sorted into a total order so that two states
// which differ only by a machine-id permutation project to the same
// Canonical value. The permutation used to reach that order is not
// retained — Canonical is a fingerprint, not a mapping.
type Canonical struct {
	machines []logicalMachine
}

// Of builds the canonical projection of s:
//  1. for each machine, gather the messages it sent and the messages
//     addressed to it, id-stripped (attribution uses both endpoints, so
//     delivery-side symmetry is not lost);
//  2. sort each machine's outgoing/incoming lists by logical compare;
//  3. sort the sequence of logical machines by logical compare, then
//     outgoing, then incoming, lexicographically.
func Of(s state.State) Canonical {
	logical := make([]logicalMachine, len(s.Machines))
	for i, m := range s.Machines {
		lm := logicalMachine{m: m}
		for _, message := range s.Messages {
			if message.Src() == m.ID() {
				lm.outgoing = append(lm.outgoing, message)
			}
			if message.Dst() == m.ID() {
				lm.incoming = append(lm.incoming, message)
			}
		}
		slices.SortFunc(lm.outgoing, func(x, y msg.Message) bool {
			return msg.LogicalCompare(x, y) < 0
		})
		slices.SortFunc(lm.incoming, func(x, y msg.Message) bool {
			return msg.LogicalCompare(x, y) < 0
		})
		logical[i] = lm
	}
	slices.SortFunc(logical, func(x, y logicalMachine) bool {
		return compareLogicalMachine(x, y) < 0
	})
	return Canonical{machines: logical}
}

// Key returns a deterministic string fingerprint of c. Two states with
// equal Canonical projections have equal Key values and are considered
// symmetry-equivalent.
func Key(c Canonical) string {
	var b strings.Builder
	for _, lm := range c.machines {
		b.WriteString(machine.LogicalKey(lm.m))
		b.WriteByte('[')
		for _, message := range lm.outgoing {
			b.WriteString(msg.LogicalKey(message))
			b.WriteByte(',')
		}
		b.WriteString("][")
		for _, message := range lm.incoming {
			b.WriteString(msg.LogicalKey(message))
			b.WriteByte(',')
		}
		b.WriteString("];")
	}
	return b.String()
}

// Equal reports whether two states are symmetry-equivalent: their
// canonical projections are equal.
func Equal(a, b state.State) bool {
	return Key(Of(a)) == Key(Of(b))
}
