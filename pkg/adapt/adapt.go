// Package adapt converts Go container kinds into the ordered
// element slices the containment policies consume. Accessors
// are explicit and named; nothing here reflects over values.
// Map and set iteration order is unspecified, so every
// accessor sorts by key to give the order-sensitive policies a
// deterministic sequence.
package adapt

import (
	"cmp"
	"slices"
)

// Keys returns the map's keys in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the map's values ordered by ascending key.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	keys := Keys(m)
	values := make([]V, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}

// SetElements returns a set's members in ascending order.
func SetElements[T cmp.Ordered](s map[T]struct{}) []T {
	elements := make([]T, 0, len(s))
	for e := range s {
		elements = append(elements, e)
	}
	slices.Sort(elements)
	return elements
}

// Pair is a single key-value entry of a map. It is comparable,
// so pairs can flow through the policies directly.
type Pair[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Pairs returns the map's entries ordered by ascending key.
func Pairs[K cmp.Ordered, V comparable](
	m map[K]V,
) []Pair[K, V] {
	keys := Keys(m)
	pairs := make([]Pair[K, V], 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair[K, V]{
			Key:   k,
			Value: m[k],
		})
	}
	return pairs
}
