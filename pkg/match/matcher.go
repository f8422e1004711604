package match

// Matcher is a pure predicate over a value of type T. Match
// must be side-effect free and idempotent: applying the same
// Matcher to equal inputs yields equal Outcomes.
type Matcher[T any] interface {
	// Match evaluates the predicate against actual.
	Match(actual T) Outcome
}

// MatcherFunc adapts a plain function to the Matcher
// interface.
type MatcherFunc[T any] func(actual T) Outcome

// Match calls f.
func (f MatcherFunc[T]) Match(actual T) Outcome {
	return f(actual)
}
