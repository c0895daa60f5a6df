package dlist

import (
	"fmt"
	"iter"
)

// Deque is a double-ended queue. It is built on the same chain as
// [List] but can only be modified at its ends, so it has no Insert or
// Remove methods. A zero value Deque is empty and ready to use.
type Deque struct {
	c chain
}

// Append adds a new node holding v to the tail of the deque. It
// panics if v is nil.
func (d *Deque) Append(v Value) {
	d.c.pushBack(v)
}

// AppendLeft adds a new node holding v to the head of the deque. It
// panics if v is nil.
func (d *Deque) AppendLeft(v Value) {
	d.c.pushFront(v)
}

// Pop removes the tail node and returns its value. If the deque is
// empty, the returned error wraps [ErrEmptyContainer].
func (d *Deque) Pop() (Value, error) {
	n := d.c.tail
	if n == nil {
		return nil, fmt.Errorf("pop: %w", ErrEmptyContainer)
	}

	d.c.unlink(n)
	return n.val, nil
}

// PopLeft removes the head node and returns its value. If the deque
// is empty, the returned error wraps [ErrEmptyContainer].
func (d *Deque) PopLeft() (Value, error) {
	n := d.c.head
	if n == nil {
		return nil, fmt.Errorf("pop left: %w", ErrEmptyContainer)
	}

	d.c.unlink(n)
	return n.val, nil
}

// Find returns the first node, starting from the head, whose value is
// equal to v. If there is no such node, the returned error wraps
// [ErrNotFound].
func (d *Deque) Find(v Value) (*ListNode, error) {
	return d.c.find(v)
}

// Get returns the node at index i, counting from zero at the head. If
// i is not in [0, Len()), the returned error wraps
// [ErrIndexOutOfRange].
func (d *Deque) Get(i int) (*ListNode, error) {
	return d.c.get(i)
}

// Len returns the number of nodes in the deque.
func (d *Deque) Len() int {
	return d.c.size
}

// String renders the deque's values from head to tail as a
// bracketed, comma-separated sequence, such as ['a', 'b'] or [1, 2.5].
func (d *Deque) String() string {
	return d.c.String()
}

// All returns an iterator over the values of the deque from head to
// tail.
func (d *Deque) All() iter.Seq[Value] {
	return d.c.all()
}

// Backward returns an iterator over the values of the deque from tail
// to head.
func (d *Deque) Backward() iter.Seq[Value] {
	return d.c.backward()
}
