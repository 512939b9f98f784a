// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options shared by list constructors.

package core

// Options holds the resolved per-list configuration.
// It is copied into the list on construction; later option calls do not
// affect existing lists.
type Options[T any] struct {
	// OnInsert is called with the payload of every created node.
	OnInsert func(v T)

	// OnRelease is called with the payload of every released node.
	OnRelease func(v T)

	// ClampPositions turns out-of-range positional inserts into tail appends.
	ClampPositions bool
}

// Option configures a list before creation.
type Option[T any] func(o *Options[T])

// DefaultOptions returns Options with no-op hooks and strict positions.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		OnInsert:  func(T) {},
		OnRelease: func(T) {},
	}
}

// NewOptions applies opts over DefaultOptions in order; later options win.
func NewOptions[T any](opts ...Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithReleaseHook registers fn to run once for each released node.
// A nil fn keeps the current hook.
func WithReleaseHook[T any](fn func(v T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnRelease = fn
		}
	}
}

// WithInsertHook registers fn to run once for each created node.
// A nil fn keeps the current hook.
func WithInsertHook[T any](fn func(v T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithClampPositions makes InsertAt append at the tail when the position is
// past Len()+1. Positions below 1 are still rejected.
func WithClampPositions[T any]() Option[T] {
	return func(o *Options[T]) { o.ClampPositions = true }
}
