package circular_test

import "iter"

// collect drains seq into a slice; nil when seq yields nothing.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}
