package linear

import (
	"iter"

	"github.com/me21jarus/dsa/core"
)

// singlyNode is a payload plus its successor link.
type singlyNode[T comparable] struct {
	value T
	next  *singlyNode[T]
}

// Singly is a null-terminated singly linked list.
// The zero value is not ready for use; call NewSingly.
type Singly[T comparable] struct {
	head *singlyNode[T]
	tail *singlyNode[T]
	opts core.Options[T]
}

var _ core.Sequence[int] = (*Singly[int])(nil)

// NewSingly returns an empty singly linked list.
func NewSingly[T comparable](opts ...core.Option[T]) *Singly[T] {
	return &Singly[T]{opts: core.NewOptions(opts...)}
}

// SinglyFrom returns a list holding values in order.
func SinglyFrom[T comparable](values []T, opts ...core.Option[T]) *Singly[T] {
	l := NewSingly(opts...)
	for _, v := range values {
		l.InsertAtTail(v)
	}

	return l
}

func (l *Singly[T]) newNode(v T) *singlyNode[T] {
	l.opts.OnInsert(v)

	return &singlyNode[T]{value: v}
}

// release detaches n and fires the release hook.
func (l *Singly[T]) release(n *singlyNode[T]) {
	n.next = nil
	l.opts.OnRelease(n.value)
}

// InsertAtHead makes v the new first element. O(1).
func (l *Singly[T]) InsertAtHead(v T) {
	n := l.newNode(v)
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// InsertAtTail appends v. On an empty list the new node is both head and tail. O(1).
func (l *Singly[T]) InsertAtTail(v T) {
	n := l.newNode(v)
	if l.tail == nil {
		l.head, l.tail = n, n
		return
	}
	l.tail.next = n
	l.tail = n
}

// InsertAt places v so that it becomes element pos (1-based).
// See the package documentation for the accepted range.
func (l *Singly[T]) InsertAt(pos int, v T) error {
	if pos < 1 {
		return errBelowOne(methodInsertAt, pos)
	}
	if pos == 1 {
		l.InsertAtHead(v)
		return nil
	}

	// Walk to the (pos-1)th node.
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
		prev.next = n
	}

	return nil
}

// DeleteAt removes element pos (1-based) and returns its payload.
func (l *Singly[T]) DeleteAt(pos int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, errEmpty(methodDeleteAt)
	}
	if pos < 1 {
		return zero, errBelowOne(methodDeleteAt, pos)
	}

	if pos == 1 {
		victim := l.head
		l.head = victim.next
		if l.head == nil {
			l.tail = nil
		}
		l.release(victim)

		return victim.value, nil
	}

	prev := l.head
	for i := 1; i < pos-1 && prev != nil; i++ {
		prev = prev.next
	}
	if prev == nil || prev.next == nil {
		return zero, errPastEnd(methodDeleteAt, pos, l.Len())
	}

	victim := prev.next
	prev.next = victim.next
	if victim == l.tail {
		l.tail = prev
	}
	l.release(victim)

	return victim.value, nil
}

// Len counts nodes by walking the list. O(n).
func (l *Singly[T]) Len() int {
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		cnt++
	}

	return cnt
}

// IsEmpty reports whether the list has no nodes.
func (l *Singly[T]) IsEmpty() bool { return l.head == nil }

// All yields payloads head to tail.
func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the payloads.
func (l *Singly[T]) Values() []T { return core.Collect[T](l) }

// Head returns the first payload, or false when empty.
func (l *Singly[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Tail returns the last payload, or false when empty.
func (l *Singly[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.value, true
}

// Find returns the 1-based position of the first node equal to v, or -1.
func (l *Singly[T]) Find(v T) int {
	pos := 1
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return pos
		}
		pos++
	}

	return -1
}

// Middle returns the middle payload. For even lengths the second of the two
// middle nodes is returned.
func (l *Singly[T]) Middle() (T, bool) {
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

// Clear releases every node head first and leaves the list empty.
func (l *Singly[T]) Clear() {
	n := l.head
	l.head, l.tail = nil, nil
	for n != nil {
		next := n.next
		l.release(n)
		n = next
	}
}

// Validate checks termination, tail placement and the absence of cycles.
func (l *Singly[T]) Validate() error {
	if l.head == nil || l.tail == nil {
		if l.head != l.tail {
			return core.Corruptf(methodValidate, "head/tail disagree on emptiness")
		}
		return nil
	}

	// Floyd's tortoise and hare: a linear list must never loop.
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return core.Corruptf(methodValidate, "cycle detected")
		}
	}

	last := l.head
	for last.next != nil {
		last = last.next
	}
	if last != l.tail {
		return core.Corruptf(methodValidate, "tail is not the last node")
	}

	return nil
}

// String renders payloads space separated.
func (l *Singly[T]) String() string { return core.Format(l.All()) }
