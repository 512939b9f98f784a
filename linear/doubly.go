package linear

import (
	"iter"

	"github.com/me21jarus/dsa/core"
)

// doublyNode is a payload plus links in both directions.
type doublyNode[T comparable] struct {
	value      T
	prev, next *doublyNode[T]
}

// Doubly is a null-terminated doubly linked list.
// Invariant: for every node x with x.next == y, y.prev == x; head.prev and
// tail.next are nil.
type Doubly[T comparable] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
	opts core.Options[T]
}

var _ core.Sequence[int] = (*Doubly[int])(nil)

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T comparable](opts ...core.Option[T]) *Doubly[T] {
	return &Doubly[T]{opts: core.NewOptions(opts...)}
}

// DoublyFrom returns a list holding values in order.
func DoublyFrom[T comparable](values []T, opts ...core.Option[T]) *Doubly[T] {
	l := NewDoubly(opts...)
	for _, v := range values {
		l.InsertAtTail(v)
	}

	return l
}

func (l *Doubly[T]) newNode(v T) *doublyNode[T] {
	l.opts.OnInsert(v)

	return &doublyNode[T]{value: v}
}

func (l *Doubly[T]) release(n *doublyNode[T]) {
	n.prev, n.next = nil, nil
	l.opts.OnRelease(n.value)
}

// InsertAtHead makes v the new first element. O(1).
func (l *Doubly[T]) InsertAtHead(v T) {
	n := l.newNode(v)
	if l.head == nil {
		l.head, l.tail = n, n
		return
	}
	n.next = l.head
	l.head.prev = n
	l.head = n
}

// InsertAtTail appends v. O(1).
func (l *Doubly[T]) InsertAtTail(v T) {
	n := l.newNode(v)
	if l.tail == nil {
		l.head, l.tail = n, n
		return
	}
	l.tail.next = n
	n.prev = l.tail
	l.tail = n
}

// InsertAt places v so that it becomes element pos (1-based).
func (l *Doubly[T]) InsertAt(pos int, v T) error {
	if pos < 1 {
		return errBelowOne(methodInsertAt, pos)
	}
	if pos == 1 {
		l.InsertAtHead(v)
		return nil
	}

	prev := l.head
	for i := 1; i < pos-1 && prev != nil; i++ {
		prev = prev.next
	}

	switch {
	case prev == nil:
		if !l.opts.ClampPositions {
			return errPastEnd(methodInsertAt, pos, l.Len())
		}
		l.InsertAtTail(v)
	case prev == l.tail:
		l.InsertAtTail(v)
	default:
		n := l.newNode(v)
		n.next = prev.next
		prev.next.prev = n
		prev.next = n
		n.prev = prev
	}

	return nil
}

// DeleteAt removes element pos (1-based) and returns its payload.
func (l *Doubly[T]) DeleteAt(pos int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, errEmpty(methodDeleteAt)
	}
	if pos < 1 {
		return zero, errBelowOne(methodDeleteAt, pos)
	}

	victim := l.head
	for i := 1; i < pos && victim != nil; i++ {
		victim = victim.next
	}
	if victim == nil {
		return zero, errPastEnd(methodDeleteAt, pos, l.Len())
	}
	l.unlink(victim)

	return victim.value, nil
}

// unlink splices n out, moving head/tail as needed, then releases it. O(1).
func (l *Doubly[T]) unlink(n *doublyNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.release(n)
}

// Len counts nodes by walking the list. O(n).
func (l *Doubly[T]) Len() int {
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		cnt++
	}

	return cnt
}

// IsEmpty reports whether the list has no nodes.
func (l *Doubly[T]) IsEmpty() bool { return l.head == nil }

// All yields payloads head to tail.
func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields payloads tail to head following prev links.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the payloads.
func (l *Doubly[T]) Values() []T { return core.Collect[T](l) }

// Head returns the first payload, or false when empty.
func (l *Doubly[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Tail returns the last payload, or false when empty.
func (l *Doubly[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.value, true
}

// Find returns the 1-based position of the first node equal to v, or -1.
func (l *Doubly[T]) Find(v T) int {
	pos := 1
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return pos
		}
		pos++
	}

	return -1
}

// Middle returns the middle payload; the second middle for even lengths.
func (l *Doubly[T]) Middle() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	return slow.value, true
}

// Clear releases every node head first.
func (l *Doubly[T]) Clear() {
	n := l.head
	l.head, l.tail = nil, nil
	for n != nil {
		next := n.next
		l.release(n)
		n = next
	}
}

// Validate checks the bidirectional link invariant and both ends.
func (l *Doubly[T]) Validate() error {
	if l.head == nil || l.tail == nil {
		if l.head != l.tail {
			return core.Corruptf(methodValidate, "head/tail disagree on emptiness")
		}
		return nil
	}
	if l.head.prev != nil {
		return core.Corruptf(methodValidate, "head.prev is not nil")
	}

	// A consistent prev chain rules out cycles: any loop would need some
	// node to be the successor of two different nodes.
	last := l.head
	for last.next != nil {
		if last.next.prev != last {
			return core.Corruptf(methodValidate, "broken prev link after %v", last.value)
		}
		last = last.next
	}
	if last != l.tail {
		return core.Corruptf(methodValidate, "tail is not the last node")
	}

	return nil
}

// String renders payloads space separated.
func (l *Doubly[T]) String() string { return core.Format(l.All()) }
