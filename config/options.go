// Package config expresses every optional knob of a Model as a typed
// struct implementing the ModelOpt marker interface, passed variadically
// to model.New — the same functional-option shape used throughout this
// codebase's ancestry for simulator/runner construction.
package config

import (
	"io"

	"modelcheck/predicate"
)

// ModelOpt is implemented by every option accepted by model.New.
type ModelOpt interface {
	modelOpt()
}

// MaxDepthOption bounds the search to at most MaxDepth BFS levels.
// -1 (the default) means unbounded.
type MaxDepthOption struct{ MaxDepth int }

func (MaxDepthOption) modelOpt() {}

// ExcludeSymmetriesOption enables the symmetry reducer's per-level
// canonical-state deduplication. Default is enabled; the CLI always
// passes this option, with Exclude false when its -o flag is given.
type ExcludeSymmetriesOption struct{ Exclude bool }

func (ExcludeSymmetriesOption) modelOpt() {}

// InterestingOption supplies the interesting-state probes that redirect
// the search when matched.
type InterestingOption struct{ Predicates []predicate.Predicate }

func (InterestingOption) modelOpt() {}

// QuietOption suppresses per-level progress output.
type QuietOption struct{}

func (QuietOption) modelOpt() {}

// ProgressWriterOption overrides where per-level progress output is
// written. Default is os.Stderr. Violations are not written here: Run
// returns them as a *model.ViolationError.
type ProgressWriterOption struct{ W io.Writer }

func (ProgressWriterOption) modelOpt() {}
