// Package dsa is an in-memory linked list engine: one ordered sequence of
// comparable payloads in four shapes, with positional and by-value editing.
//
// What is in the box?
//
//	Linear lists (null-terminated, head + tail handle):
//		• linear.Singly – next links only
//		• linear.Doubly – next and prev links, Backward traversal
//	Circular lists (rings, tail handle, head == tail.next):
//		• circular.Singly – next links only
//		• circular.Doubly – next and prev links, O(1) unlink
//
// Everything is organized under these subpackages:
//
//	core/     — sentinel errors, Variant, Sequence, list options & hooks
//	linear/   — InsertAtHead/InsertAtTail/InsertAt/DeleteAt, Find, Middle
//	circular/ — InsertAfter/Delete/Append by value, one-lap traversal
//	builder/  — deterministic fixtures from value generators
//	script/   — YAML command scripts and the shipped demonstrations
//	console/  — the "n, n integers, optional key" stdin protocol
//	cmd/lvlist — command line front-end (run, demo, read, gen)
//
// Quick ASCII example:
//
//	linear:   head → 1 → 5 → 10 → nil
//	circular: 5 → 1 → (back to 5), tail = 1
//
// Every mutation keeps the link invariants that Validate checks, and every
// node is released exactly once, either by a delete or by Clear.
package dsa
