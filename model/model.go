// Package model holds the search engine: the initial state, the
// invariants, the pending frontier, and the visited set. It drives
// successor generation, detects terminating states, and reports
// invariant violations and interesting-state redirection.
package model

import (
	"fmt"
	"io"
	"os"

	"modelcheck/config"
	"modelcheck/machine"
	"modelcheck/msg"
	"modelcheck/predicate"
	"modelcheck/state"
	"modelcheck/successor"
)

// Result is the outcome of a completed Run: the deduplicated set of
// terminating states the search could end in, plus summary counters
// useful for reporting.
type Result struct {
	Terminating   []state.State
	NodesExplored int
	Visited       int
}

// Model is the search engine described by the checker's specification:
// it owns the pending frontier, the visited set, the invariants, and
// runs a level-synchronous BFS over the reachable state graph.
type Model struct {
	initial state.State

	invariants  []predicate.Predicate
	interesting []predicate.Predicate

	maxDepth          int
	excludeSymmetries bool

	quiet    bool
	progress io.Writer
}

// New constructs a Model from an ordered machine list — machine i must
// have ID() == i — and a set of invariants checked at every reachable
// state. OnStartup is run for every machine, in list order, and its
// emitted messages seed the initial frontier, matching the reference
// implementation's construction order.
//
// The built-in "Valid messages" invariant is always added, in addition
// to any invariants supplied here.
func New(machines []machine.Machine, invariants []predicate.Predicate, opts ...config.ModelOpt) *Model {
	initial := state.New(machines)

	var msgs []msg.Message
	for _, m := range machines {
		msgs = append(msgs, m.OnStartup()...)
	}
	initial.Messages = msgs

	m := &Model{
		initial:           initial,
		invariants:        append([]predicate.Predicate{predicate.ValidMessages()}, invariants...),
		maxDepth:          -1,
		excludeSymmetries: true,
		progress:          os.Stderr,
	}

	for _, opt := range opts {
		switch t := opt.(type) {
		case config.MaxDepthOption:
			m.maxDepth = t.MaxDepth
		case config.ExcludeSymmetriesOption:
			m.excludeSymmetries = t.Exclude
		case config.InterestingOption:
			m.interesting = t.Predicates
		case config.QuietOption:
			m.quiet = true
		case config.ProgressWriterOption:
			m.progress = t.W
		}
	}

	return m
}

// Run executes the level-synchronous BFS to completion (or to the depth
// bound) and returns the terminating states, or a *ViolationError if
// some invariant failed on a reachable state.
func (m *Model) Run() (Result, error) {
	pending := []state.State{m.initial}
	visited := successor.NewSet()
	terminating := successor.NewTerminating()
	prog := newProgress(m.progress, m.quiet)

	depth := 0
	for len(pending) > 0 {
		redirectedAt := -1
		for i, s := range pending {
			visited.Add(state.Key(s))
			prog.nodesExplored++

			for _, inv := range m.invariants {
				if !inv.Match(s) {
					return Result{}, &ViolationError{Invariant: inv.Name, State: s}
				}
			}

			matched := false
			for _, p := range m.interesting {
				if p.Match(s) {
					matched = true
					break
				}
			}
			if matched {
				redirectedAt = i
				break
			}
		}

		if redirectedAt >= 0 {
			// Interesting-state redirection: replace the frontier with
			// just the matching state, discarding its siblings, but
			// keep everything already added to visited. The search
			// continues forward from the seed; it never revisits what
			// visited already excludes.
			pending = []state.State{pending[redirectedAt]}
		}

		// Check the depth bound before generating this level's
		// successors: at MaxDepth, every state still pending is a
		// survivor and is reported terminating as-is, rather than being
		// expanded one level further. With MaxDepth 0 this fires
		// immediately after the invariant pass above, so the initial
		// state is returned untouched as the sole terminating state.
		if m.maxDepth >= 0 && depth >= m.maxDepth {
			for _, s := range pending {
				terminating.Add(s)
			}
			pending = nil
			break
		}

		next := successor.Generate(pending, visited, m.excludeSymmetries, terminating)
		prog.level(depth, visited.Len(), len(pending), len(next), len(terminating.States()))
		pending = next
		depth++
	}

	return Result{
		Terminating:   terminating.States(),
		NodesExplored: prog.nodesExplored,
		Visited:       visited.Len(),
	}, nil
}

// String reports a short human-readable summary of a Model, mirroring
// the reference implementation's startup banner.
func (m *Model) String() string {
	return fmt.Sprintf("Model{machines=%d invariants=%d maxDepth=%d excludeSymmetries=%v}",
		len(m.initial.Machines), len(m.invariants), m.maxDepth, m.excludeSymmetries)
}
