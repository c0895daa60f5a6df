package dlist

import (
	"fmt"
	"iter"
	"strings"
)

// chain is the node chain shared by List and Deque. It maintains
// that head and tail are either both nil or both set, that size is
// the number of nodes between them, and that every pair of adjacent
// nodes links to each other in both directions.
type chain struct {
	head, tail *ListNode
	size       int
}

func (c *chain) pushBack(v Value) {
	n := newListNode(v)
	c.size++
	if c.tail == nil {
		c.head = n
		c.tail = n
		return
	}

	n.prev = c.tail
	c.tail.next = n
	c.tail = n
}

func (c *chain) pushFront(v Value) {
	n := newListNode(v)
	c.size++
	if c.head == nil {
		c.head = n
		c.tail = n
		return
	}

	n.next = c.head
	c.head.prev = n
	c.head = n
}

// insertBefore links a new node holding v in front of mark, which
// must already be in the chain.
func (c *chain) insertBefore(mark *ListNode, v Value) {
	n := newListNode(v)
	n.prev = mark.prev
	n.next = mark
	if mark.prev == nil {
		c.head = n
	} else {
		mark.prev.next = n
	}
	mark.prev = n
	c.size++
}

// unlink removes n from the chain and clears its links.
func (c *chain) unlink(n *ListNode) {
	switch {
	case c.head == c.tail:
		c.head = nil
		c.tail = nil
	case n == c.head:
		c.head = n.next
		n.next.prev = nil
	case n == c.tail:
		c.tail = n.prev
		n.prev.next = nil
	default:
		n.next.prev = n.prev
		n.prev.next = n.next
	}

	n.next = nil
	n.prev = nil
	c.size--
}

func (c *chain) find(v Value) (*ListNode, error) {
	for n := range c.nodes() {
		if n.val.Equal(v) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("find %v: %w", v, ErrNotFound)
}

func (c *chain) get(i int) (*ListNode, error) {
	if i < 0 || i >= c.size {
		return nil, fmt.Errorf("get %d from list of length %d: %w", i, c.size, ErrIndexOutOfRange)
	}

	n := c.head
	for range i {
		n = n.next
	}
	return n, nil
}

func (c *chain) String() string {
	if c.size == 0 {
		return "[]"
	}

	var buf strings.Builder
	buf.WriteByte('[')
	for n := range c.nodes() {
		if n != c.head {
			buf.WriteString(", ")
		}
		buf.WriteString(n.val.String())
	}
	buf.WriteByte(']')

	return buf.String()
}

// nodes returns an iterator over the nodes of the chain. It is safe
// to unlink the currently-yielded node during iteration.
func (c *chain) nodes() iter.Seq[*ListNode] {
	return func(yield func(*ListNode) bool) {
		cur := c.head
		for cur != nil {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

func (c *chain) all() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for n := range c.nodes() {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (c *chain) backward() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		cur := c.tail
		for cur != nil {
			prev := cur.prev
			if !yield(cur.val) {
				return
			}
			cur = prev
		}
	}
}
