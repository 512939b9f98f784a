// Package core holds the contracts shared by every linked-list variant in
// this module: sentinel errors, functional options, the Variant enum and the
// Sequence interface.
//
// Variants:
//
//	singly-linear    linear.Singly   head + tail handle, next only
//	doubly-linear    linear.Doubly   head + tail handle, next + prev
//	singly-circular  circular.Singly tail handle, head == tail.next
//	doubly-circular  circular.Doubly tail handle, next + prev ring
//
// Ownership:
//
//	Each node is owned by exactly one structural slot (the handle or a
//	neighbour's next field). A node is created by an insert and released by
//	a delete or by Clear. Release detaches the node and fires the
//	OnRelease hook exactly once.
//
// Options (Option[T]):
//
//	– WithReleaseHook(fn)  called once per released node.
//	– WithInsertHook(fn)   called once per created node.
//	– WithClampPositions() positional inserts beyond Len()+1 append at the
//	  tail instead of returning ErrInvalidPosition.
//
// Errors:
//
//	ErrNotFound        – value or position lookup failed.
//	ErrEmptyList       – operation on an empty list.
//	ErrInvalidPosition – position outside the accepted range.
//	ErrCorrupted       – Validate found a broken link invariant.
//
// Concurrency:
//
//	Lists are not safe for concurrent use. Operations are synchronous and
//	never block.
package core
