// Package dlist provides a doubly linked list and a deque that share
// the same node chain. Both hold [Value]s, which are restricted to
// integers, floats, and text.
//
// Neither container is safe for concurrent use. Guard an instance
// with a single lock if it has to be shared.
package dlist
