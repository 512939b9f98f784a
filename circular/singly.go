package circular

import (
	"iter"

	"github.com/me21jarus/dsa/core"
)

type singlyNode[T comparable] struct {
	value T
	next  *singlyNode[T]
}

// Singly is a singly linked ring referenced by its tail.
// Invariant: empty ⇔ tail == nil; otherwise following next from tail.next
// returns to tail.next after exactly Len() hops.
type Singly[T comparable] struct {
	tail *singlyNode[T]
	opts core.Options[T]
}

var _ core.Sequence[int] = (*Singly[int])(nil)

// NewSingly returns an empty ring.
func NewSingly[T comparable](opts ...core.Option[T]) *Singly[T] {
	return &Singly[T]{opts: core.NewOptions(opts...)}
}

// SinglyFrom returns a ring holding values in order, values[0] at the head.
func SinglyFrom[T comparable](values []T, opts ...core.Option[T]) *Singly[T] {
	r := NewSingly(opts...)
	for _, v := range values {
		r.Append(v)
	}

	return r
}

func (r *Singly[T]) newNode(v T) *singlyNode[T] {
	r.opts.OnInsert(v)

	return &singlyNode[T]{value: v}
}

func (r *Singly[T]) release(n *singlyNode[T]) {
	n.next = nil
	r.opts.OnRelease(n.value)
}

// seed turns an empty ring into a ring of one.
func (r *Singly[T]) seed(v T) {
	n := r.newNode(v)
	n.next = n
	r.tail = n
}

// spliceAfter links a new node after at, moving the tail when at is the tail.
func (r *Singly[T]) spliceAfter(at *singlyNode[T], v T) {
	n := r.newNode(v)
	n.next = at.next
	at.next = n
	if at == r.tail {
		r.tail = n
	}
}

// Append inserts v after the tail and makes it the new tail. O(1).
func (r *Singly[T]) Append(v T) {
	if r.tail == nil {
		r.seed(v)
		return
	}
	r.spliceAfter(r.tail, v)
}

// InsertAfter inserts v right after the first node equal to target.
// On an empty ring v becomes the only node and target is ignored.
func (r *Singly[T]) InsertAfter(target, v T) error {
	if r.tail == nil {
		r.seed(v)
		return nil
	}

	curr := r.tail
	for {
		if curr.value == target {
			r.spliceAfter(curr, v)
			return nil
		}
		curr = curr.next
		if curr == r.tail {
			break
		}
	}

	return errValueNotFound(methodInsertAfter, target)
}

// Delete removes the first node equal to v, scanning from the tail.
func (r *Singly[T]) Delete(v T) error {
	if r.tail == nil {
		return errEmpty(methodDelete)
	}

	prev := r.findPredecessor(v)
	if prev == nil {
		return errValueNotFound(methodDelete, v)
	}

	victim := prev.next
	if victim == prev {
		// sole node
		r.tail = nil
		r.release(victim)
		return nil
	}
	prev.next = victim.next
	if victim == r.tail {
		r.tail = prev
	}
	r.release(victim)

	return nil
}

// findPredecessor returns the node whose successor is the first match for v
// in tail-first order, or nil.
func (r *Singly[T]) findPredecessor(v T) *singlyNode[T] {
	if r.tail.value == v {
		p := r.tail
		for p.next != r.tail {
			p = p.next
		}
		return p
	}
	for p := r.tail; p.next != r.tail; p = p.next {
		if p.next.value == v {
			return p
		}
	}

	return nil
}

// Contains reports whether any node equals v.
func (r *Singly[T]) Contains(v T) bool {
	for x := range r.All() {
		if x == v {
			return true
		}
	}

	return false
}

// Len counts nodes over one lap. O(n).
func (r *Singly[T]) Len() int {
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
func (r *Singly[T]) IsEmpty() bool { return r.tail == nil }

// All yields one lap of payloads starting at the head.
func (r *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tail == nil {
			return
		}
		head := r.tail.next
		n := head
		for {
			if !yield(n.value) {
				return
			}
			n = n.next
			if n == head {
				return
			}
		}
	}
}

// Values returns a snapshot of one lap.
func (r *Singly[T]) Values() []T { return core.Collect[T](r) }

// Head returns the payload at tail.next, or false when empty.
func (r *Singly[T]) Head() (T, bool) {
	if r.tail == nil {
		var zero T
		return zero, false
	}

	return r.tail.next.value, true
}

// Tail returns the tail payload, or false when empty.
func (r *Singly[T]) Tail() (T, bool) {
	if r.tail == nil {
		var zero T
		return zero, false
	}

	return r.tail.value, true
}

// Clear breaks the ring and releases every node head first.
func (r *Singly[T]) Clear() {
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

// Validate checks that the ring closes on the head through the tail.
func (r *Singly[T]) Validate() error {
	if r.tail == nil {
		return nil
	}
	head := r.tail.next
	if head == nil {
		return core.Corruptf(methodValidate, "tail.next is nil")
	}

	seen := make(map[*singlyNode[T]]struct{})
	n := head
	for {
		seen[n] = struct{}{}
		if n.next == nil {
			return core.Corruptf(methodValidate, "ring is open after %v", n.value)
		}
		if n.next == head {
			break
		}
		if _, dup := seen[n.next]; dup {
			return core.Corruptf(methodValidate, "loop does not pass through head")
		}
		n = n.next
	}
	if n != r.tail {
		return core.Corruptf(methodValidate, "tail is not the head's predecessor")
	}

	return nil
}

// String renders one lap space separated.
func (r *Singly[T]) String() string { return core.Format(r.All()) }
