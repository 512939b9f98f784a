// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Variant enum, Sequence contract and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors for list operations.
var (
	// ErrNotFound indicates a value or position lookup failed.
	ErrNotFound = errors.New("core: not found")

	// ErrEmptyList indicates an operation that requires nodes ran on an empty list.
	ErrEmptyList = errors.New("core: list is empty")

	// ErrInvalidPosition indicates a 1-based position outside the accepted range.
	ErrInvalidPosition = errors.New("core: invalid position")

	// ErrCorrupted indicates Validate found a broken structural invariant.
	ErrCorrupted = errors.New("core: list structure corrupted")

	// ErrUnknownVariant indicates ParseVariant received an unrecognised name.
	ErrUnknownVariant = errors.New("core: unknown list variant")
)

// Variant names one of the four list shapes.
type Variant int

const (
	// SinglyLinear is a head/tail list linked by next only.
	SinglyLinear Variant = iota
	// DoublyLinear is a head/tail list linked by next and prev.
	DoublyLinear
	// SinglyCircular is a tail-referenced ring linked by next only.
	SinglyCircular
	// DoublyCircular is a tail-referenced ring linked by next and prev.
	DoublyCircular
)

var variantNames = [...]string{
	SinglyLinear:   "singly-linear",
	DoublyLinear:   "doubly-linear",
	SinglyCircular: "singly-circular",
	DoublyCircular: "doubly-circular",
}

// Variants lists every Variant in declaration order.
func Variants() []Variant {
	return []Variant{SinglyLinear, DoublyLinear, SinglyCircular, DoublyCircular}
}

// String returns the canonical kebab-case name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// IsCircular reports whether the variant is a ring.
func (v Variant) IsCircular() bool { return v == SinglyCircular || v == DoublyCircular }

// IsDoubly reports whether the variant maintains prev links.
func (v Variant) IsDoubly() bool { return v == DoublyLinear || v == DoublyCircular }

// ParseVariant resolves a variant name. Matching is case-insensitive and
// accepts "_" in place of "-".
func ParseVariant(name string) (Variant, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range variantNames {
		if n == norm {
			return Variant(i), nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", name, ErrUnknownVariant)
}

// Sequence is the read/maintenance surface shared by all list variants.
type Sequence[T comparable] interface {
	// Len counts the nodes currently in the list.
	Len() int
	// All yields payloads in traversal order, head first. Finite and restartable.
	All() iter.Seq[T]
	// Clear releases every node and leaves the list empty.
	Clear()
	// Validate checks the structural invariants and reports ErrCorrupted.
	Validate() error
	// String renders payloads space separated.
	String() string
}
