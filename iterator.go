package pooled

// Iterator walks a List in either direction and can modify the list around its current element.
//
// Once Next returns false, it keeps returning false unless elements are added past the iterator's
// position. List.Iter adapts a list to juniper's iterator.Iterator.
//
// The list must not be modified other than through the iterator while iterating, except by adding
// to the end the iterator is moving toward.
type Iterator[T any] struct {
	list     *List[T]
	curr     *Node[T]
	reversed bool
}

// Reset moves the iterator back before the first element in the given direction.
func (it *Iterator[T]) Reset(reversed bool) *Iterator[T] {
	it.curr = &it.list.main
	it.reversed = reversed
	return it
}

func (it *Iterator[T]) step(n *Node[T]) *Node[T] {
	if it.reversed {
		return n.prev
	}
	return n.next
}

// HasNext returns true if calling Next would reach another element.
func (it *Iterator[T]) HasNext() bool {
	return it.step(it.curr) != &it.list.main
}

// Next advances to the next element and returns true, or returns false without moving if there
// is none.
func (it *Iterator[T]) Next() bool {
	next := it.step(it.curr)
	if next == &it.list.main {
		return false
	}
	it.curr = next
	return true
}

// Item returns the current element. Before the first call to Next it returns the zero value.
func (it *Iterator[T]) Item() T { return it.curr.value }

// Remove removes the current element. The iterator steps back to the element visited before it,
// so the following Next continues with the element after the removed one.
func (it *Iterator[T]) Remove() error {
	if it.curr == &it.list.main {
		return ErrNoCurrent
	}
	n := it.curr
	if it.reversed {
		it.curr = n.next
	} else {
		it.curr = n.prev
	}
	it.list.remove(n)
	return nil
}

// InsertBefore inserts v immediately before the current element, that is, nearer the front of the
// list regardless of the direction of iteration.
func (it *Iterator[T]) InsertBefore(v T) error {
	if it.curr == &it.list.main {
		return ErrNoCurrent
	}
	it.list.insert(v, it.curr)
	return nil
}

// InsertAfter inserts v immediately after the current element, that is, nearer the back of the
// list regardless of the direction of iteration.
func (it *Iterator[T]) InsertAfter(v T) error {
	if it.curr == &it.list.main {
		return ErrNoCurrent
	}
	it.list.insert(v, it.curr.next)
	return nil
}
