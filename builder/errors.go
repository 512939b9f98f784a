// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w wrapping.
//   • Option and generator constructors may panic; builders never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative element count.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic generator ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrValueExhausted indicates a SliceValues generator was asked for more
// values than it holds.
var ErrValueExhausted = errors.New("builder: value source exhausted")

// builderErrorf prefixes a formatted message with the method tag and wraps err.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
