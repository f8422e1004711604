package contain

import "digital.vasic.matchers/pkg/match"

// sameElements checks multiset equality: same elements with
// the same multiplicities, order irrelevant.
type sameElements[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// SameElementsAs builds a matcher that holds when the actual
// collection contains the same elements as expected with the
// same multiplicities, in any order. Duplicates in expected
// are permitted; they carry meaning here.
func SameElementsAs[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	return &sameElements[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *sameElements[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain the same elements as",
		held:   "contained the same elements as",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

// matches walks the actual collection once, pulling elements
// from the expected collection on demand. pending holds
// expected elements pulled but not yet matched; next is the
// pull position. The check holds when both the expected
// collection and the pending buffer are exhausted together
// with the actual collection.
func (m *sameElements[T]) matches(actual []T) bool {
	var pending []T
	next := 0

	for _, a := range actual {
		if i := indexFunc(pending, a, m.eq); i >= 0 {
			pending = append(pending[:i], pending[i+1:]...)
			continue
		}

		found := false
		for next < len(m.expected) {
			e := m.expected[next]
			next++
			if m.eq(e, a) {
				found = true
				break
			}
			pending = append(pending, e)
		}
		if !found {
			return false
		}
	}

	return next == len(m.expected) && len(pending) == 0
}

// sameIteratedElements checks positional equality: equal
// length and pairwise-equal elements in iteration order.
type sameIteratedElements[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// SameIteratedElementsAs builds a matcher that holds when the
// actual collection equals expected element-by-element in
// iteration order. Duplicates in expected are permitted.
func SameIteratedElementsAs[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	return &sameIteratedElements[T]{
		expected: expected,
		eq:       s.eq,
	}, nil
}

// Match implements match.Matcher.
func (m *sameIteratedElements[T]) Match(
	actual []T,
) match.Outcome {
	p := phrasing{
		failed: "did not contain the same iterated elements as",
		held:   "contained the same iterated elements as",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

func (m *sameIteratedElements[T]) matches(actual []T) bool {
	if len(actual) != len(m.expected) {
		return false
	}
	for i := range actual {
		if !m.eq(actual[i], m.expected[i]) {
			return false
		}
	}
	return true
}

// allOf checks that every expected element occurs somewhere in
// the actual collection.
type allOf[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// AllOf builds a matcher that holds when every expected
// element occurs in the actual collection. Order and actual
// duplicates are irrelevant. The expected collection must not
// repeat an element.
func AllOf[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	if err := dupGuard(KindAllOf, expected, s.eq); err != nil {
		return nil, err
	}
	return &allOf[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *allOf[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain all of",
		held:   "contained all of",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

func (m *allOf[T]) matches(actual []T) bool {
	for _, e := range m.expected {
		if !containsFunc(actual, e, m.eq) {
			return false
		}
	}
	return true
}

// inOrder checks that the expected elements occur in the
// actual collection as a not-necessarily-contiguous
// subsequence, in order.
type inOrder[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// InOrder builds a matcher that holds when the expected
// elements occur within the actual collection as a
// subsequence, each found strictly after the previous one.
// The expected collection must not repeat an element.
func InOrder[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	if err := dupGuard(KindInOrder, expected, s.eq); err != nil {
		return nil, err
	}
	return &inOrder[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *inOrder[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain all of",
		held:   "contained all of",
		suffix: "in order",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

// matches locates each expected element at its LAST occurrence
// in the remaining view of the actual collection, then
// advances the view past that position. With repeated actual
// elements this accepts fewer inputs than a greedy
// first-occurrence search would.
func (m *inOrder[T]) matches(actual []T) bool {
	view := actual
	for _, e := range m.expected {
		idx := -1
		for i, a := range view {
			if m.eq(a, e) {
				idx = i
			}
		}
		if idx < 0 {
			return false
		}
		view = view[idx+1:]
	}
	return true
}

// oneOf checks that at least one expected element occurs in
// the actual collection.
type oneOf[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// OneOf builds a matcher that holds when at least one expected
// element occurs in the actual collection. The expected
// collection must not repeat an element.
func OneOf[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	if err := dupGuard(KindOneOf, expected, s.eq); err != nil {
		return nil, err
	}
	return &oneOf[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *oneOf[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain one of",
		held:   "contained one of",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

func (m *oneOf[T]) matches(actual []T) bool {
	for _, e := range m.expected {
		if containsFunc(actual, e, m.eq) {
			return true
		}
	}
	return false
}

// only checks that every actual element is drawn from the
// expected collection.
type only[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// Only builds a matcher that holds when every element of the
// actual collection occurs in expected; expected elements
// absent from the actual collection are irrelevant. The
// expected collection must not repeat an element.
func Only[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	if err := dupGuard(KindOnly, expected, s.eq); err != nil {
		return nil, err
	}
	return &only[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *only[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain only",
		held:   "contained only",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

// matches keeps a buffer of values already confirmed present
// so repeated actual elements are not searched twice.
func (m *only[T]) matches(actual []T) bool {
	var confirmed []T
	for _, a := range actual {
		if containsFunc(confirmed, a, m.eq) {
			continue
		}
		if !containsFunc(m.expected, a, m.eq) {
			return false
		}
		confirmed = append(confirmed, a)
	}
	return true
}

// inOrderOnly checks that the actual collection is exactly a
// sequence of contiguous runs of the expected elements, in the
// expected order.
type inOrderOnly[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// InOrderOnly builds a matcher that holds when the actual
// collection consists of contiguous runs, one per expected
// element, in the expected order, with nothing extra or out of
// place. The expected collection must not repeat an element.
func InOrderOnly[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	err := dupGuard(KindInOrderOnly, expected, s.eq)
	if err != nil {
		return nil, err
	}
	return &inOrderOnly[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher.
func (m *inOrderOnly[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "did not contain only",
		held:   "contained only",
		suffix: "in order",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

// matches walks the actual collection left to right against a
// current expected value, advancing to the next expected value
// whenever the run ends. The check holds when the actual
// collection is exhausted exactly as the last expected value's
// run ends, with every expected value visited.
func (m *inOrderOnly[T]) matches(actual []T) bool {
	if len(m.expected) == 0 {
		return len(actual) == 0
	}
	if len(actual) == 0 {
		return false
	}
	if !m.eq(actual[0], m.expected[0]) {
		return false
	}

	pos := 0
	for _, a := range actual {
		if m.eq(a, m.expected[pos]) {
			continue
		}
		pos++
		if pos == len(m.expected) ||
			!m.eq(a, m.expected[pos]) {
			return false
		}
	}

	return pos == len(m.expected)-1
}

// noneOf checks that the two collections are disjoint.
type noneOf[T comparable] struct {
	expected []T
	eq       func(a, b T) bool
}

// NoneOf builds a matcher that holds when no element of the
// actual collection occurs in expected. The expected
// collection must not repeat an element.
func NoneOf[T comparable](
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	s := newSettings(opts...)
	if err := dupGuard(KindNoneOf, expected, s.eq); err != nil {
		return nil, err
	}
	return &noneOf[T]{expected: expected, eq: s.eq}, nil
}

// Match implements match.Matcher. For this policy a failure
// means an expected element WAS found, so the verb phrases are
// inverted relative to the other policies.
func (m *noneOf[T]) Match(actual []T) match.Outcome {
	p := phrasing{
		failed: "contained one of",
		held:   "did not contain one of",
	}
	return p.outcome(
		m.matches(actual),
		renderActual(actual),
		renderExpected(m.expected),
	)
}

func (m *noneOf[T]) matches(actual []T) bool {
	for _, a := range actual {
		if containsFunc(m.expected, a, m.eq) {
			return false
		}
	}
	return true
}
