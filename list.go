package dlist

import (
	"fmt"
	"iter"
)

// List is a doubly-linked list of Values. A zero value List is empty
// and ready to use.
type List struct {
	c chain
}

// Append adds a new node holding v to the tail of the list. It panics
// if v is nil.
func (ls *List) Append(v Value) {
	ls.c.pushBack(v)
}

// Find returns the first node, starting from the head, whose value is
// equal to v. If there is no such node, the returned error wraps
// [ErrNotFound].
func (ls *List) Find(v Value) (*ListNode, error) {
	return ls.c.find(v)
}

// Get returns the node at index i, counting from zero at the head. If
// i is not in [0, Len()), the returned error wraps
// [ErrIndexOutOfRange].
func (ls *List) Get(i int) (*ListNode, error) {
	return ls.c.get(i)
}

// Len returns the number of nodes in the list.
func (ls *List) Len() int {
	return ls.c.size
}

// String renders the list's values from head to tail as a bracketed,
// comma-separated sequence, such as ['a', 'b'] or [1, 2.5].
func (ls *List) String() string {
	return ls.c.String()
}

// Remove unlinks the first node whose value is equal to v. If there
// is no such node, the list is left unchanged and the returned error
// wraps [ErrNotFound].
func (ls *List) Remove(v Value) error {
	n, err := ls.c.find(v)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	ls.c.unlink(n)
	return nil
}

// Insert adds a new node holding v immediately before the node that
// is currently at index i, so that v ends up at index i. Inserting at
// index 0 of an empty list is the same as calling Append. Any other i
// outside of [0, Len()) results in an error wrapping
// [ErrIndexOutOfRange]. Use Append to add to the tail.
func (ls *List) Insert(i int, v Value) error {
	if i == 0 && ls.c.size == 0 {
		ls.c.pushBack(v)
		return nil
	}

	mark, err := ls.c.get(i)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	ls.c.insertBefore(mark, v)
	return nil
}

// All returns an iterator over the values of the list from head to
// tail.
func (ls *List) All() iter.Seq[Value] {
	return ls.c.all()
}

// Backward returns an iterator over the values of the list from tail
// to head.
func (ls *List) Backward() iter.Seq[Value] {
	return ls.c.backward()
}
