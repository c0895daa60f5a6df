package dlist_test

import (
	"slices"
	"testing"

	"deedles.dev/dlist"
	"github.com/stretchr/testify/require"
)

// requireLinked walks s in both directions and checks that the links
// agree with each other and with Len.
func requireLinked(t *testing.T, s dlist.Sequence) {
	t.Helper()

	if s.Len() == 0 {
		_, err := s.Get(0)
		require.ErrorIs(t, err, dlist.ErrIndexOutOfRange)
		require.Equal(t, "[]", s.String())
		return
	}

	head, err := s.Get(0)
	require.NoError(t, err)
	require.Nil(t, head.Prev())
	tail, err := s.Get(s.Len() - 1)
	require.NoError(t, err)
	require.Nil(t, tail.Next())

	var forward []*dlist.ListNode
	for n := head; n != nil; n = n.Next() {
		if next := n.Next(); next != nil {
			require.Same(t, n, next.Prev())
		}
		forward = append(forward, n)
		require.LessOrEqual(t, len(forward), s.Len())
	}
	require.Len(t, forward, s.Len())
	require.Same(t, tail, forward[len(forward)-1])

	var backward []*dlist.ListNode
	for n := tail; n != nil; n = n.Prev() {
		if prev := n.Prev(); prev != nil {
			require.Same(t, n, prev.Next())
		}
		backward = append(backward, n)
		require.LessOrEqual(t, len(backward), s.Len())
	}
	require.Len(t, backward, s.Len())

	slices.Reverse(backward)
	for i := range forward {
		require.Same(t, forward[i], backward[i])
	}
}

func texts(s ...string) []dlist.Value {
	vals := make([]dlist.Value, 0, len(s))
	for _, v := range s {
		vals = append(vals, dlist.Text(v))
	}
	return vals
}

func newList(vals ...dlist.Value) *dlist.List {
	var ls dlist.List
	for _, v := range vals {
		ls.Append(v)
	}
	return &ls
}
