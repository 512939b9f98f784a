// Package linear implements null-terminated linked lists with 1-based
// positional insert and delete.
//
// Two handles are provided:
//
//	Singly[T] – nodes carry next only; head and tail are tracked so both
//	            InsertAtHead and InsertAtTail are O(1).
//	Doubly[T] – nodes carry next and prev; every splice fixes both links.
//
// Positions:
//
//	InsertAt(pos, v) accepts 1 ≤ pos ≤ Len()+1. pos == 1 inserts at the head,
//	pos == Len()+1 appends. Larger positions return ErrInvalidPosition
//	(wrapping ErrNotFound) unless the list was built with
//	core.WithClampPositions, in which case the value is appended.
//	DeleteAt(pos) accepts 1 ≤ pos ≤ Len(); an empty list reports
//	ErrEmptyList.
//
// Complexity:
//
//	InsertAtHead, InsertAtTail  O(1)
//	InsertAt, DeleteAt          O(pos)
//	Len, Find, Middle, Validate O(n)
//
// Usage:
//
//	l := linear.NewSingly[int]()
//	l.InsertAtTail(5)
//	l.InsertAtTail(10)
//	l.InsertAtHead(1)
//	fmt.Println(l) // 1 5 10
package linear
