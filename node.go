package pooled

// Node holds a single element of a List. A node that is not part of a list has both links
// pointing to itself and a zero element.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	value T
}

// NewNode returns an unlinked node. Pool implementations use it to create nodes when they have
// none to recycle.
func NewNode[T any]() *Node[T] {
	n := &Node[T]{}
	n.prev = n
	n.next = n
	return n
}

// Value returns the element held by n.
func (n *Node[T]) Value() T { return n.value }

// linkBefore splices n into a ring immediately before mark.
func (n *Node[T]) linkBefore(mark *Node[T]) {
	n.prev = mark.prev
	n.next = mark
	mark.prev.next = n
	mark.prev = n
}

// unlink detaches n from its ring, leaving n pointing at itself.
func (n *Node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = n
	n.next = n
}

func (n *Node[T]) reset() {
	var zero T
	n.value = zero
	n.prev = n
	n.next = n
}
