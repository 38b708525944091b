package search

import (
	"fmt"
	"io"
)

// Result is the outcome of one search run. The counters are valid in every
// case, including exhausted and cancelled runs.
type Result struct {
	// Actions is the plan in execution order. Empty and non-nil when the
	// start was already clean; nil when no plan was found.
	Actions []Action

	// Generated counts states pushed onto the frontier after the start,
	// whether or not they were later expanded.
	Generated int

	// Expanded counts frontier pops examined for successors. DepthFirst
	// counts each distinct state at most once; UniformCost counts every
	// pop, stale entries included.
	Expanded int

	// Found reports whether a goal state was reached.
	Found bool
}

// Report writes the result in its plain text form: one action label per
// line in execution order, then the two counter lines
//
//	<n> nodes generated
//	<n> nodes expanded
//
// A result with Found=false writes nothing at all; an exhausted search is
// silent. An already-clean start writes just the counter lines.
func (r *Result) Report(out io.Writer) error {
	if !r.Found {
		return nil
	}

	for _, a := range r.Actions {
		if _, err := fmt.Fprintln(out, a); err != nil {
			return fmt.Errorf("search: report: %w", err)
		}
	}
	if _, err := fmt.Fprintf(out, "%d nodes generated\n%d nodes expanded\n", r.Generated, r.Expanded); err != nil {
		return fmt.Errorf("search: report: %w", err)
	}

	return nil
}
