package suite

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.matchers/pkg/contain"
)

// Engine evaluates declarative check definitions against
// []any actual collections. It is immutable and safe for
// concurrent use.
type Engine struct {
	eq func(a, b any) bool
}

// NewEngine returns an Engine comparing elements with go-cmp
// deep equality after numeric normalization, so banks written
// in JSON (which decodes numbers as float64) compare equal to
// values decoded from YAML or supplied from Go code as ints.
func NewEngine() *Engine {
	return &Engine{
		eq: func(a, b any) bool {
			return cmp.Equal(normalize(a), normalize(b))
		},
	}
}

// NewEngineWithEquality returns an Engine using a custom
// element equality.
func NewEngineWithEquality(
	eq func(a, b any) bool,
) *Engine {
	return &Engine{eq: eq}
}

// Evaluate builds the policy named by def.Kind and applies it
// to actual. Construction failures (unknown kind, duplicate
// expected element) are reported inside the Result, never
// panicked.
func (e *Engine) Evaluate(
	def Definition,
	actual []any,
) Result {
	r := Result{
		Kind:     def.Kind,
		Target:   def.Target,
		Expected: def.Expected,
		Actual:   actual,
		Message:  def.Message,
	}

	m, err := contain.New(
		def.Kind,
		def.Expected,
		contain.WithEquality(e.eq),
	)
	if err != nil {
		r.Err = err.Error()
		return r
	}

	r.Outcome = m.Match(actual)
	return r
}

// EvaluateAll runs every definition against the map of named
// collections. A definition whose target is missing yields a
// failed Result rather than an error.
func (e *Engine) EvaluateAll(
	defs []Definition,
	values map[string][]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, def := range defs {
		actual, ok := values[def.Target]
		if !ok {
			results = append(results, Result{
				Kind:     def.Kind,
				Target:   def.Target,
				Expected: def.Expected,
				Message:  def.Message,
				Err: fmt.Sprintf(
					"target not found: %s", def.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(def, actual))
	}

	return results
}

// normalize widens the numeric types the JSON and YAML
// decoders produce to float64 so cross-format comparisons
// behave. Non-numeric values pass through unchanged.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
