// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • valueFn  = AscendingValues(DefaultStart, DefaultStep)  (1,2,3,...)
//   • rng      = nil                                         (no randomness)
//   • listOpts = none

package builder

import (
	"math/rand"

	"github.com/me21jarus/dsa/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value (immutable to callers).
type builderConfig struct {
	// Payload strategy: index -> value.
	valueFn ValueFn
	// RNG for stochastic generators; nil means "no randomness".
	rng *rand.Rand
	// Options forwarded to every constructed list.
	listOpts []core.Option[int]
}

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: AscendingValues(DefaultStart, DefaultStep),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
