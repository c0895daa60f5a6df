package dlist

import (
	"fmt"
	"iter"
)

// Sequence is the set of operations shared by [List] and [Deque].
type Sequence interface {
	Append(v Value)
	Find(v Value) (*ListNode, error)
	Get(i int) (*ListNode, error)
	Len() int
	String() string
	All() iter.Seq[Value]
}

// An Inserter is a Sequence that supports inserting at an arbitrary
// index.
type Inserter interface {
	Insert(i int, v Value) error
}

// A Remover is a Sequence that supports removing an arbitrary value.
type Remover interface {
	Remove(v Value) error
}

var (
	_ Sequence = (*List)(nil)
	_ Sequence = (*Deque)(nil)
	_ Inserter = (*List)(nil)
	_ Remover  = (*List)(nil)
)

// Insert inserts v into s at index i if s is an [Inserter]. Otherwise
// it returns an error wrapping [ErrUnsupportedOperation].
func Insert(s Sequence, i int, v Value) error {
	if ins, ok := s.(Inserter); ok {
		return ins.Insert(i, v)
	}
	return fmt.Errorf("insert into %T: %w, add to the ends instead", s, ErrUnsupportedOperation)
}

// Remove removes the first occurrence of v from s if s is a
// [Remover]. Otherwise it returns an error wrapping
// [ErrUnsupportedOperation].
func Remove(s Sequence, v Value) error {
	if rm, ok := s.(Remover); ok {
		return rm.Remove(v)
	}
	return fmt.Errorf("remove from %T: %w, pop from the ends instead", s, ErrUnsupportedOperation)
}
