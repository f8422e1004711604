// Package suite lets callers describe containment checks
// declaratively and evaluate whole banks of them against named
// values, without writing Go per check. Banks are plain JSON
// or YAML files; kinds are resolved by name through the
// contain package's factory.
package suite

import (
	"digital.vasic.matchers/pkg/contain"
	"digital.vasic.matchers/pkg/match"
)

// Definition describes a single containment check to evaluate
// against a named actual collection.
type Definition struct {
	// Kind names the containment policy to apply.
	Kind contain.Kind `json:"kind"`

	// Target is the name of the actual collection to check.
	Target string `json:"target"`

	// Expected holds the expected elements.
	Expected []any `json:"expected"`

	// Message is an optional caller note echoed into the
	// result.
	Message string `json:"message,omitempty"`
}

// Result captures the outcome of evaluating one Definition.
type Result struct {
	// Kind is the policy that was applied.
	Kind contain.Kind `json:"kind"`

	// Target is the name of the collection that was checked.
	Target string `json:"target"`

	// Expected holds the elements the check expected.
	Expected []any `json:"expected"`

	// Actual holds the elements that were checked.
	Actual []any `json:"actual,omitempty"`

	// Outcome is the comparison verdict with its paired
	// explanations. Meaningful only when Err is empty.
	Outcome match.Outcome `json:"outcome"`

	// Err is set when the check could not be constructed
	// (unknown kind, duplicate expected element, missing
	// target). It is never set for an ordinary non-match.
	Err string `json:"error,omitempty"`

	// Message echoes the definition's caller note.
	Message string `json:"message,omitempty"`
}

// Passed reports whether the check constructed cleanly and
// matched.
func (r Result) Passed() bool {
	return r.Err == "" && r.Outcome.Matched
}
