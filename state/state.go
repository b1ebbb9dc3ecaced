// Package state holds the global-state representation explored by the
// search engine: the in-flight messages, the machines, and the causal
// history that led here.
package state

import (
	"fmt"
	"strings"

	"modelcheck/diff"
	"modelcheck/machine"
	"modelcheck/msg"
)

// State is a snapshot of every machine and every in-flight message.
//
// Copy is a shallow clone: the three sequences get new slice headers,
// but the machines, messages, and diffs they reference are shared until
// a successor surgically substitutes one machine's clone (see the
// successor package). This is the structural-sharing discipline the
// checker relies on to keep memory bounded across a large search.
type State struct {
	Messages []msg.Message
	Machines []machine.Machine
	History  []diff.Diff
	Depth    int
}

// New builds the initial state from an ordered machine list. It does not
// run OnStartup; callers that need initial messages should do so before
// constructing the State, or use model.New which does this for them.
func New(machines []machine.Machine) State {
	for i, m := range machines {
		if m.ID() != i {
			panic(fmt.Sprintf("state: machine at index %d has id %d; ids must match position", i, m.ID()))
		}
	}
	return State{
		Messages: nil,
		Machines: machines,
		History:  nil,
		Depth:    0,
	}
}

// Copy returns a shallow clone of s: new slice headers over the same
// underlying messages, machines, and diffs. Mutating the returned
// state's slices (append, reslice) never affects s, but mutating a
// referenced machine in place would — successors never do that; they
// clone the one machine they touch instead.
func (s State) Copy() State {
	return State{
		Messages: append([]msg.Message(nil), s.Messages...),
		Machines: s.Machines,
		History:  s.History,
		Depth:    s.Depth,
	}
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

// Compare performs the full three-way comparison of two states:
// lexicographically by |messages|, then per-message full compare in
// sequence order, then |machines|, then per-machine full compare.
// History and depth are deliberately excluded, so that states coalesce
// regardless of how they were reached.
func Compare(a, b State) int {
	if c := sign(len(a.Messages) - len(b.Messages)); c != 0 {
		return c
	}
	for i := range a.Messages {
		if c := msg.Compare(a.Messages[i], b.Messages[i]); c != 0 {
			return c
		}
	}
	if c := sign(len(a.Machines) - len(b.Machines)); c != 0 {
		return c
	}
	for i := range a.Machines {
		if c := machine.Compare(a.Machines[i], b.Machines[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b are fully equal per Compare.
func Equal(a, b State) bool { return Compare(a, b) == 0 }

// Key returns a deterministic string identifying the full state (message
// sequence, in order, then machine sequence, in order). Used as a map
// key by the visited set; two states with Equal Key values are Equal per
// Compare and vice versa.
func Key(s State) string {
	var b strings.Builder
	for _, m := range s.Messages {
		b.WriteString(msg.Key(m))
		b.WriteByte(';')
	}
	b.WriteByte('|')
	for _, m := range s.Machines {
		b.WriteString(machine.Key(m))
		b.WriteByte(';')
	}
	return b.String()
}

// IsTerminating reports whether s has no in-flight messages, i.e. there
// is nothing left to deliver or drop.
func (s State) IsTerminating() bool { return len(s.Messages) == 0 }

// String renders the state's machines and pending messages.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "depth=%d machines=%v messages=%v", s.Depth, s.Machines, s.Messages)
	return b.String()
}

// HistoryString walks History in order, printing one diff per line, the
// format used for a violation's causal trace.
func (s State) HistoryString() string {
	var b strings.Builder
	for i, d := range s.History {
		fmt.Fprintf(&b, "%3d: %s\n", i, d)
	}
	return b.String()
}
