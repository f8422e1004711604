package contain

// Option configures a policy at construction time.
type Option[T comparable] func(*settings[T])

// settings holds resolved construction options.
type settings[T comparable] struct {
	eq func(a, b T) bool
}

// WithEquality replaces the default == element comparison.
// Needed when T is an interface type whose dynamic values may
// not be comparable, or when deep equality is wanted.
func WithEquality[T comparable](
	eq func(a, b T) bool,
) Option[T] {
	return func(s *settings[T]) {
		s.eq = eq
	}
}

// newSettings applies opts over the defaults.
func newSettings[T comparable](opts ...Option[T]) settings[T] {
	s := settings[T]{
		eq: func(a, b T) bool { return a == b },
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
