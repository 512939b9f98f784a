package circular

import (
	"iter"

	"github.com/me21jarus/dsa/core"
)

type doublyNode[T comparable] struct {
	value      T
	prev, next *doublyNode[T]
}

// Doubly is a doubly linked ring referenced by its tail.
// Invariant: for every node x, x.next.prev == x and x.prev.next == x.
type Doubly[T comparable] struct {
	tail *doublyNode[T]
	opts core.Options[T]
}

var _ core.Sequence[int] = (*Doubly[int])(nil)

// NewDoubly returns an empty ring.
func NewDoubly[T comparable](opts ...core.Option[T]) *Doubly[T] {
	return &Doubly[T]{opts: core.NewOptions(opts...)}
}

// DoublyFrom returns a ring holding values in order, values[0] at the head.
func DoublyFrom[T comparable](values []T, opts ...core.Option[T]) *Doubly[T] {
	r := NewDoubly(opts...)
	for _, v := range values {
		r.Append(v)
	}

	return r
}

func (r *Doubly[T]) newNode(v T) *doublyNode[T] {
	r.opts.OnInsert(v)

	return &doublyNode[T]{value: v}
}

// release clears both links so no self-reference survives the node.
func (r *Doubly[T]) release(n *doublyNode[T]) {
	n.prev, n.next = nil, nil
	r.opts.OnRelease(n.value)
}

func (r *Doubly[T]) seed(v T) {
	n := r.newNode(v)
	n.next, n.prev = n, n
	r.tail = n
}

func (r *Doubly[T]) spliceAfter(at *doublyNode[T], v T) {
	n := r.newNode(v)
	n.next = at.next
	at.next.prev = n
	at.next = n
	n.prev = at
	if at == r.tail {
		r.tail = n
	}
}

// find returns the first node equal to v scanning tail-first, or nil.
func (r *Doubly[T]) find(v T) *doublyNode[T] {
	curr := r.tail
	for {
		if curr.value == v {
			return curr
		}
		curr = curr.next
		if curr == r.tail {
			return nil
		}
	}
}

// Append inserts v after the tail and makes it the new tail. O(1).
func (r *Doubly[T]) Append(v T) {
	if r.tail == nil {
		r.seed(v)
		return
	}
	r.spliceAfter(r.tail, v)
}

// InsertAfter inserts v right after the first node equal to target.
// On an empty ring v becomes the only node and target is ignored.
func (r *Doubly[T]) InsertAfter(target, v T) error {
	if r.tail == nil {
		r.seed(v)
		return nil
	}
	at := r.find(target)
	if at == nil {
		return errValueNotFound(methodInsertAfter, target)
	}
	r.spliceAfter(at, v)

	return nil
}

// Delete removes the first node equal to v, scanning from the tail.
func (r *Doubly[T]) Delete(v T) error {
	if r.tail == nil {
		return errEmpty(methodDelete)
	}
	n := r.find(v)
	if n == nil {
		return errValueNotFound(methodDelete, v)
	}
	r.unlink(n)

	return nil
}

// unlink removes n from the ring in O(1).
func (r *Doubly[T]) unlink(n *doublyNode[T]) {
	if n.next == n {
		r.tail = nil
		r.release(n)
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	if n == r.tail {
		r.tail = n.prev
	}
	r.release(n)
}

// Contains reports whether any node equals v.
func (r *Doubly[T]) Contains(v T) bool {
	return r.tail != nil && r.find(v) != nil
}

// Len counts nodes over one lap. O(n).
func (r *Doubly[T]) Len() int {
	if r.tail == nil {
		return 0
	}
	cnt := 1
	for n := r.tail.next; n != r.tail; n = n.next {
		cnt++
	}

	return cnt
}

// IsEmpty reports whether the ring has no nodes.
func (r *Doubly[T]) IsEmpty() bool { return r.tail == nil }

// All yields one lap of payloads starting at the head.
func (r *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tail == nil {
			return
		}
		head := r.tail.next
		for n := head; ; {
			if !yield(n.value) {
				return
			}
			if n = n.next; n == head {
				return
			}
		}
	}
}

// Backward yields one lap starting at the tail and following prev links.
func (r *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tail == nil {
			return
		}
		for n := r.tail; ; {
			if !yield(n.value) {
				return
			}
			if n = n.prev; n == r.tail {
				return
			}
		}
	}
}

// Values returns a snapshot of one lap.
func (r *Doubly[T]) Values() []T { return core.Collect[T](r) }

// Head returns the payload at tail.next, or false when empty.
func (r *Doubly[T]) Head() (T, bool) {
	if r.tail == nil {
		var zero T
		return zero, false
	}

	return r.tail.next.value, true
}

// Tail returns the tail payload, or false when empty.
func (r *Doubly[T]) Tail() (T, bool) {
	if r.tail == nil {
		var zero T
		return zero, false
	}

	return r.tail.value, true
}

// Clear breaks the ring and releases every node head first.
func (r *Doubly[T]) Clear() {
	if r.tail == nil {
		return
	}
	n := r.tail.next
	r.tail.next = nil
	r.tail = nil
	for n != nil {
		next := n.next
		r.release(n)
		n = next
	}
}

// Validate walks one lap checking next/prev symmetry and closure at the tail.
func (r *Doubly[T]) Validate() error {
	if r.tail == nil {
		return nil
	}
	head := r.tail.next
	if head == nil {
		return core.Corruptf(methodValidate, "tail.next is nil")
	}

	n := head
	for {
		if n.next == nil || n.next.prev != n {
			return core.Corruptf(methodValidate, "broken link after %v", n.value)
		}
		if n.next == head {
			break
		}
		n = n.next
	}
	if n != r.tail {
		return core.Corruptf(methodValidate, "tail is not the head's predecessor")
	}

	return nil
}

// String renders one lap space separated.
func (r *Doubly[T]) String() string { return core.Format(r.All()) }
