// Package circular implements tail-referenced rings: the handle stores only
// the tail node and the head is always tail.next.
//
//	Singly[T] – next links only. Deleting a value walks to its predecessor.
//	Doubly[T] – next and prev links; once a node is located it is unlinked
//	            in O(1) and its own links are cleared before release.
//
// Lookups by value start at the tail and wrap around exactly once, so the
// first match is the tail itself when it carries the value, then head,
// head.next and so on. Inserting after the tail moves the tail to the new
// node, which keeps Append and InsertAfter(tailValue, v) equivalent.
//
// Traversal via All starts at the head and yields exactly Len() values; a
// ring has no nil terminator, so iteration stops when it comes back to the
// head.
//
// Errors:
//
//	ErrEmptyList – Delete on an empty ring.
//	ErrNotFound  – no node carries the requested value after a full lap.
//
// InsertAfter on an empty ring never fails: the new node becomes a ring of
// one, pointing at itself, and the target is ignored.
package circular
