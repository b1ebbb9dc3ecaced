// Package successor implements the one-step successor generation
// described by the checker's specification: for every pending message
// in every frontier state, produce the delivery successor and,
// optionally, the drop successor.
package successor

import (
	"fmt"

	"modelcheck/canon"
	"modelcheck/diff"
	"modelcheck/machine"
	"modelcheck/msg"
	"modelcheck/state"
)

// Set is a membership set of string keys, used for the permanent
// visited set (keyed by state.Key) and the per-level canonical set
// (keyed by canon.Key) alike.
type Set struct {
	seen map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{seen: make(map[string]struct{})} }

// Add records key as seen. Returns false if key was already present.
func (s *Set) Add(key string) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains reports whether key has been recorded.
func (s *Set) Contains(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Len reports the number of distinct keys recorded.
func (s *Set) Len() int { return len(s.seen) }

// Terminating accumulates terminating states, deduplicated by full
// state key so that a state discovered via two different histories is
// kept once, under the history first reached — per the specification's
// resolution of the ambiguity between per-state and per-(state,history)
// collection.
type Terminating struct {
	seen   map[string]struct{}
	states []state.State
}

// NewTerminating returns an empty Terminating accumulator.
func NewTerminating() *Terminating {
	return &Terminating{seen: make(map[string]struct{})}
}

// Add records s as terminating if its full-compare key has not already
// been recorded.
func (t *Terminating) Add(s state.State) {
	key := state.Key(s)
	if _, ok := t.seen[key]; ok {
		return
	}
	t.seen[key] = struct{}{}
	t.states = append(t.states, s)
}

// States returns the accumulated terminating states.
func (t *Terminating) States() []state.State { return t.states }

// Generate produces the next BFS frontier from the current one.
//
// For every state in frontier with no pending messages, it is added to
// terminating and skipped. Otherwise, for each pending message, a
// delivery successor is always produced, and a drop successor is
// produced iff the message allows it. Every candidate successor is
// rejected if its full-compare key is already in visited; if
// excludeSymmetries is set, it is additionally rejected if its canonical
// key has already been seen at this level. Surviving successors are
// returned as the next frontier.
func Generate(frontier []state.State, visited *Set, excludeSymmetries bool, terminating *Terminating) []state.State {
	canonicalSeen := NewSet()
	var next []state.State

	for _, s := range frontier {
		if s.IsTerminating() {
			terminating.Add(s)
			continue
		}
		for i, m := range s.Messages {
			if succ, ok := deliver(s, i, m); ok {
				next = consider(next, succ, visited, excludeSymmetries, canonicalSeen)
			}
			if m.MayDrop() {
				succ := drop(s, i, m)
				next = consider(next, succ, visited, excludeSymmetries, canonicalSeen)
			}
		}
	}
	return next
}

func consider(next []state.State, succ state.State, visited *Set, excludeSymmetries bool, canonicalSeen *Set) []state.State {
	if visited.Contains(state.Key(succ)) {
		return next
	}
	if excludeSymmetries {
		key := canon.Key(canon.Of(succ))
		if !canonicalSeen.Add(key) {
			return next
		}
	}
	return append(next, succ)
}

// removeMessage returns a new slice equal to messages with the element
// at index i removed. It always allocates, so the result never aliases
// messages's backing array — freshly generated successors must never
// share a mutable message slice with the frontier they came from.
func removeMessage(messages []msg.Message, i int) []msg.Message {
	out := make([]msg.Message, 0, len(messages)-1)
	out = append(out, messages[:i]...)
	out = append(out, messages[i+1:]...)
	return out
}

func deliver(s state.State, i int, m msg.Message) (state.State, bool) {
	if m.Dst() < 0 || m.Dst() >= len(s.Machines) {
		panic(fmt.Sprintf("successor: message %v addressed to invalid machine index %d", m, m.Dst()))
	}

	original := s.Machines[m.Dst()]
	clone := original.Clone()
	emitted := clone.HandleMessage(m)

	// Keep the original machine only when the clone compares equal and
	// recorded no new error: Compare does not look at Error(), and a
	// dropped error would hide the failure from the Valid messages
	// invariant.
	machines := s.Machines
	if machine.Compare(clone, original) != 0 || clone.Error() != original.Error() {
		machines = make([]machine.Machine, len(s.Machines))
		copy(machines, s.Machines)
		machines[m.Dst()] = clone
	}

	messages := removeMessage(s.Messages, i)
	messages = append(messages, emitted...)

	history := make([]diff.Diff, len(s.History)+1)
	copy(history, s.History)
	history[len(s.History)] = diff.Delivery(m, emitted)

	return state.State{
		Messages: messages,
		Machines: machines,
		History:  history,
		Depth:    s.Depth + 1,
	}, true
}

func drop(s state.State, i int, m msg.Message) state.State {
	messages := removeMessage(s.Messages, i)

	history := make([]diff.Diff, len(s.History)+1)
	copy(history, s.History)
	history[len(s.History)] = diff.Drop(m)

	return state.State{
		Messages: messages,
		Machines: s.Machines,
		History:  history,
		Depth:    s.Depth + 1,
	}
}
