package dlist

// Node holds a single Value. A zero Node holds no value.
type Node struct {
	val Value
}

// NewNode returns a Node holding v. See [ValueOf] for the accepted
// types.
func NewNode(v any) (Node, error) {
	val, err := ValueOf(v)
	if err != nil {
		return Node{}, err
	}
	return Node{val: val}, nil
}

// Value returns the value held by the node.
func (n Node) Value() Value {
	return n.val
}

// ListNode is a Node that is linked into a [List] or [Deque]. The
// links are owned by the list. Next and Prev are only for traversal
// and both return nil once the node has been removed.
type ListNode struct {
	Node
	prev, next *ListNode
}

// NewListNode returns a detached ListNode holding v.
func NewListNode(v any) (*ListNode, error) {
	n, err := NewNode(v)
	if err != nil {
		return nil, err
	}
	return &ListNode{Node: n}, nil
}

func newListNode(v Value) *ListNode {
	if v == nil {
		panic("dlist: nil Value")
	}
	return &ListNode{Node: Node{val: v}}
}

// Next returns the following node, or nil if n is the tail.
func (n *ListNode) Next() *ListNode {
	return n.next
}

// Prev returns the preceding node, or nil if n is the head.
func (n *ListNode) Prev() *ListNode {
	return n.prev
}
