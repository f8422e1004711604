package contain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/match"
)

func TestNew_ResolvesEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			m, err := New(kind, []int{1, 2, 3})
			require.NoError(t, err)
			require.NotNil(t, m)

			// Matching never errors for well-formed input.
			o := m.Match([]int{1, 2, 3})
			assert.NotEmpty(t, o.FailureMessage)
			assert.NotEmpty(t, o.NegatedFailureMessage)
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind("bogus"), []int{1})

	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"unknown containment kind: bogus")
}

func TestKinds_CountsAllPolicies(t *testing.T) {
	assert.Len(t, Kinds(), 8)
}

// Policies compose with the match combinators: negating a
// policy swaps its message orientation.
func TestPolicy_ComposesWithNot(t *testing.T) {
	m, err := AllOf([]int{1, 2})
	require.NoError(t, err)

	negated := match.Not(m)
	o := negated.Match([]int{1, 2, 3})

	assert.False(t, o.Matched)
	assert.Equal(t,
		"[1 2 3] contained all of (1, 2)",
		o.FailureMessage)
}

// Policies compose with And: a compound failure names only the
// operand that determined the verdict.
func TestPolicy_ComposesWithAnd(t *testing.T) {
	all, err := AllOf([]int{1, 2})
	require.NoError(t, err)
	none, err := NoneOf([]int{9})
	require.NoError(t, err)

	o := match.And(all, none).Match([]int{1, 2, 9})

	assert.False(t, o.Matched)
	assert.Equal(t,
		"[1 2 9] contained all of (1, 2),"+
			" but [1 2 9] contained one of (9)",
		o.FailureMessage)
}

func TestPolicy_IsIdempotent(t *testing.T) {
	m, err := InOrder([]int{1, 3})
	require.NoError(t, err)

	actual := []int{1, 2, 3}
	first := m.Match(actual)
	second := m.Match(actual)

	assert.Equal(t, first, second)
}
