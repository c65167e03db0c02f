// Package pooled provides a doubly linked list that recycles its nodes through a Pool, and a
// cursor that can insert and remove elements while iterating.
package pooled

import (
	"errors"
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

var (
	// ErrEmpty is returned when reading or removing the first or last element of an empty list.
	ErrEmpty = errors.New("pooled: list is empty")
	// ErrRemoveEmpty is returned by RemoveFirst and RemoveLast on an empty list. It matches
	// ErrEmpty under errors.Is.
	ErrRemoveEmpty = fmt.Errorf("pooled: remove from empty list: %w", ErrEmpty)
	// ErrNoCurrent is returned by cursor-relative operations when the cursor is not on an
	// element, either because it was never advanced or because it was reset.
	ErrNoCurrent = errors.New("pooled: iterator is not on an element")
)

// List is a circular doubly linked list around a sentinel node. Nodes are obtained from a Pool
// when elements are added and returned to it when they are removed.
//
// The zero value is an empty list backed by its own NodePool. A List must not be copied after
// first use.
//
// List's methods may not be called concurrently.
type List[T any] struct {
	pool Pool[T]
	// main.next is the first node and main.prev is the last. main never holds an element.
	main Node[T]
	size int
	iter *Iterator[T]
}

// New returns an empty list whose nodes come from pool. If pool is nil, the list gets a NodePool
// of its own.
func New[T any](pool Pool[T]) *List[T] {
	l := &List[T]{pool: pool}
	l.lazyInit()
	return l
}

// Of returns a list backed by pool holding elems in order.
func Of[T any](pool Pool[T], elems ...T) *List[T] {
	l := New(pool)
	for _, e := range elems {
		l.Add(e)
	}
	return l
}

// FromIterator returns a list backed by pool holding everything remaining in iter, in order.
func FromIterator[T any](pool Pool[T], iter iterator.Iterator[T]) *List[T] {
	l := New(pool)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		l.Add(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.main.next == nil {
		l.main.next = &l.main
		l.main.prev = &l.main
	}
	if l.pool == nil {
		l.pool = NewNodePool[T]()
	}
}

func (l *List[T]) Len() int    { return l.size }
func (l *List[T]) Empty() bool { return l.size == 0 }

// Add appends v to the back of the list.
func (l *List[T]) Add(v T) {
	l.lazyInit()
	l.insert(v, &l.main)
}

// First returns the first element, or ErrEmpty.
func (l *List[T]) First() (T, error) {
	l.lazyInit()
	if l.main.next == &l.main {
		var zero T
		return zero, ErrEmpty
	}
	return l.main.next.value, nil
}

// SetFirst inserts v at the front of the list.
func (l *List[T]) SetFirst(v T) {
	l.lazyInit()
	l.insert(v, l.main.next)
}

// Last returns the last element, or ErrEmpty.
func (l *List[T]) Last() (T, error) {
	l.lazyInit()
	if l.main.prev == &l.main {
		var zero T
		return zero, ErrEmpty
	}
	return l.main.prev.value, nil
}

// SetLast inserts v at the back of the list. It is the same as Add.
func (l *List[T]) SetLast(v T) { l.Add(v) }

// RemoveFirst removes the first element and returns it, or returns ErrRemoveEmpty.
func (l *List[T]) RemoveFirst() (T, error) {
	l.lazyInit()
	if l.main.next == &l.main {
		var zero T
		return zero, ErrRemoveEmpty
	}
	return l.remove(l.main.next), nil
}

// RemoveLast removes the last element and returns it, or returns ErrRemoveEmpty.
func (l *List[T]) RemoveLast() (T, error) {
	l.lazyInit()
	if l.main.prev == &l.main {
		var zero T
		return zero, ErrRemoveEmpty
	}
	return l.remove(l.main.prev), nil
}

// Contains returns true if l holds an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(func(e T) bool { return e == v })
}

// ContainsFunc returns true if f returns true for any element of l.
func (l *List[T]) ContainsFunc(f func(T) bool) bool {
	if l.size == 0 {
		return false
	}
	for n := l.main.next; n != &l.main; n = n.next {
		if f(n.value) {
			return true
		}
	}
	return false
}

// Each calls f for every element from front to back. It does not use the list's cached
// iterator, so it is safe to call while that iterator is in use as long as f does not modify l.
func (l *List[T]) Each(f func(T)) {
	if l.size == 0 {
		return
	}
	for n := l.main.next; n != &l.main; n = n.next {
		f(n.value)
	}
}

// Slice returns the elements of l from front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	l.Each(func(v T) { out = append(out, v) })
	return out
}

// Clear removes every element, returning each node to the pool.
func (l *List[T]) Clear() {
	l.lazyInit()
	for l.main.prev != &l.main {
		l.remove(l.main.prev)
	}
	l.rewind()
}

// Purge empties the list in constant time. Nodes are not returned to the pool and are left to the
// garbage collector, so prefer Clear when the pool is shared. Only the cached iterator is rewound;
// iterators from NewIterator must be Reset before they are used again.
func (l *List[T]) Purge() {
	l.main.next = &l.main
	l.main.prev = &l.main
	l.size = 0
	l.rewind()
}

// Iterator returns the list's cached iterator reset to walk from front to back.
//
// The same Iterator is returned by every call to Iterator and ReversedIterator, so these must
// not be used for nested iteration over one list. Use NewIterator for that.
func (l *List[T]) Iterator() *Iterator[T] {
	return l.cached().Reset(false)
}

// ReversedIterator returns the list's cached iterator reset to walk from back to front. See
// Iterator.
func (l *List[T]) ReversedIterator() *Iterator[T] {
	return l.cached().Reset(true)
}

// NewIterator returns a newly allocated iterator over l, safe to use alongside any other.
func (l *List[T]) NewIterator(reversed bool) *Iterator[T] {
	l.lazyInit()
	return (&Iterator[T]{list: l}).Reset(reversed)
}

// Iter returns a fresh iterator over l from front to back in juniper's form. Unlike Iterator, it
// stays exhausted once its Next has returned false.
func (l *List[T]) Iter() iterator.Iterator[T] {
	return &juniperIter[T]{it: l.NewIterator(false)}
}

type juniperIter[T any] struct {
	it   *Iterator[T]
	done bool
}

func (j *juniperIter[T]) Next() (T, bool) {
	if j.done || !j.it.Next() {
		j.done = true
		var zero T
		return zero, false
	}
	return j.it.Item(), true
}

// InsertBefore inserts v immediately before the cached iterator's current element. It returns
// ErrNoCurrent if the cached iterator is not on an element.
func (l *List[T]) InsertBefore(v T) error {
	if l.iter == nil {
		return ErrNoCurrent
	}
	return l.iter.InsertBefore(v)
}

// InsertAfter inserts v immediately after the cached iterator's current element. It returns
// ErrNoCurrent if the cached iterator is not on an element.
func (l *List[T]) InsertAfter(v T) error {
	if l.iter == nil {
		return ErrNoCurrent
	}
	return l.iter.InsertAfter(v)
}

// Remove removes the cached iterator's current element. It returns ErrNoCurrent if the cached
// iterator is not on an element.
func (l *List[T]) Remove() error {
	if l.iter == nil {
		return ErrNoCurrent
	}
	return l.iter.Remove()
}

func (l *List[T]) cached() *Iterator[T] {
	if l.iter == nil {
		l.iter = l.NewIterator(false)
	}
	return l.iter
}

// rewind puts the cached iterator back on the sentinel so it cannot reach detached nodes.
func (l *List[T]) rewind() {
	if l.iter != nil {
		l.iter.curr = &l.main
	}
}

// insert puts v into a pooled node linked immediately before mark and returns the node.
func (l *List[T]) insert(v T, mark *Node[T]) *Node[T] {
	n := l.pool.Obtain()
	n.value = v
	n.linkBefore(mark)
	l.size++
	return n
}

// remove unlinks n, frees it, and returns the element it held. n must not be the sentinel. If the
// cached iterator is on n, it steps back the way Iterator.Remove does.
func (l *List[T]) remove(n *Node[T]) T {
	if l.iter != nil && l.iter.curr == n {
		if l.iter.reversed {
			l.iter.curr = n.next
		} else {
			l.iter.curr = n.prev
		}
	}
	v := n.value
	n.unlink()
	l.size--
	n.reset()
	l.pool.Free(n)
	return v
}

func (l *List[T]) moveToBack(n *Node[T]) {
	if l.main.prev == n {
		return
	}
	n.unlink()
	n.linkBefore(&l.main)
}
