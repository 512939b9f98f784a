// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points.
//
// Design contract:
//   - Options resolve into an immutable builderConfig (no global state).
//   - Values are generated first, then handed to the list constructor, so a
//     generator failure never leaves a half-built list behind.
//   - Never panic; return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/me21jarus/dsa/circular"
	"github.com/me21jarus/dsa/core"
	"github.com/me21jarus/dsa/linear"
)

// Values generates n payloads with the configured ValueFn.
// Complexity: O(n).
func Values(n int, opts ...BuilderOption) ([]int, error) {
	cfg := newBuilderConfig(opts...)

	return cfg.values(MethodValues, n)
}

func (cfg builderConfig) values(method string, n int) ([]int, error) {
	if err := validateSize(method, n); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		v, err := cfg.valueFn(i, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: value %d: %w", method, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Build returns a list of the requested variant holding n generated payloads.
func Build(variant core.Variant, n int, opts ...BuilderOption) (core.Sequence[int], error) {
	cfg := newBuilderConfig(opts...)
	vals, err := cfg.values(MethodBuild, n)
	if err != nil {
		return nil, err
	}

	switch variant {
	case core.SinglyLinear:
		return linear.SinglyFrom(vals, cfg.listOpts...), nil
	case core.DoublyLinear:
		return linear.DoublyFrom(vals, cfg.listOpts...), nil
	case core.SinglyCircular:
		return circular.SinglyFrom(vals, cfg.listOpts...), nil
	case core.DoublyCircular:
		return circular.DoublyFrom(vals, cfg.listOpts...), nil
	default:
		return nil, fmt.Errorf("%s: %v: %w", MethodBuild, variant, core.ErrUnknownVariant)
	}
}

// SinglyLinear builds a linear.Singly with n generated payloads.
func SinglyLinear(n int, opts ...BuilderOption) (*linear.Singly[int], error) {
	cfg := newBuilderConfig(opts...)
	vals, err := cfg.values(MethodSinglyLinear, n)
	if err != nil {
		return nil, err
	}

	return linear.SinglyFrom(vals, cfg.listOpts...), nil
}

// DoublyLinear builds a linear.Doubly with n generated payloads.
func DoublyLinear(n int, opts ...BuilderOption) (*linear.Doubly[int], error) {
	cfg := newBuilderConfig(opts...)
	vals, err := cfg.values(MethodDoublyLinear, n)
	if err != nil {
		return nil, err
	}

	return linear.DoublyFrom(vals, cfg.listOpts...), nil
}

// SinglyCircular builds a circular.Singly with n generated payloads.
func SinglyCircular(n int, opts ...BuilderOption) (*circular.Singly[int], error) {
	cfg := newBuilderConfig(opts...)
	vals, err := cfg.values(MethodSinglyCircular, n)
	if err != nil {
		return nil, err
	}

	return circular.SinglyFrom(vals, cfg.listOpts...), nil
}

// DoublyCircular builds a circular.Doubly with n generated payloads.
func DoublyCircular(n int, opts ...BuilderOption) (*circular.Doubly[int], error) {
	cfg := newBuilderConfig(opts...)
	vals, err := cfg.values(MethodDoublyCircular, n)
	if err != nil {
		return nil, err
	}

	return circular.DoublyFrom(vals, cfg.listOpts...), nil
}
