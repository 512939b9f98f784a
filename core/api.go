// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: small helpers over Sequence.

package core

import (
	"fmt"
	"iter"
	"strings"
)

// Collect drains s.All() into a new slice. An empty list yields an empty,
// non-nil slice.
func Collect[T comparable](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Format renders the values of seq space separated, without a trailing space.
func Format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// Corruptf wraps ErrCorrupted with a method tag and detail message.
func Corruptf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrCorrupted)
}

// IndexOf returns the 1-based traversal position of the first payload equal
// to v, or -1 when absent.
func IndexOf[T comparable](s Sequence[T], v T) int {
	i := 1
	for x := range s.All() {
		if x == v {
			return i
		}
		i++
	}

	return -1
}
