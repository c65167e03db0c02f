package pooled

// Pool hands out and takes back list nodes. A List obtains a node for every element it stores
// and frees the node when the element is removed.
//
// Nodes returned by Obtain must be unlinked (see NewNode) with a zero element. Nodes passed to
// Free have already been reset that way.
type Pool[T any] interface {
	Obtain() *Node[T]
	Free(*Node[T])
}

// NodePool is a free-list of nodes. It may be shared by any number of lists with the same
// element type.
//
// NodePool's methods may not be called concurrently.
type NodePool[T any] struct {
	free []*Node[T]
	max  int
	peak int
}

var _ Pool[int] = &NodePool[int]{}

// NewNodePool returns a pool that keeps every node freed to it until Clear is called.
func NewNodePool[T any]() *NodePool[T] {
	return &NodePool[T]{}
}

// NewBoundedNodePool returns a pool that keeps at most max free nodes. Nodes freed while the
// pool is full are left to the garbage collector. max <= 0 means unbounded.
func NewBoundedNodePool[T any](max int) *NodePool[T] {
	return &NodePool[T]{max: max}
}

// Obtain returns a recycled node if one is available, or a new one otherwise.
func (p *NodePool[T]) Obtain() *Node[T] {
	if len(p.free) == 0 {
		return NewNode[T]()
	}
	n := p.free[len(p.free)-1]
	p.free[len(p.free)-1] = nil
	p.free = p.free[:len(p.free)-1]
	return n
}

// Free resets n and makes it available to Obtain. Free(nil) does nothing.
func (p *NodePool[T]) Free(n *Node[T]) {
	if n == nil {
		return
	}
	n.reset()
	if p.max > 0 && len(p.free) >= p.max {
		return
	}
	p.free = append(p.free, n)
	if len(p.free) > p.peak {
		p.peak = len(p.free)
	}
}

// Available returns the number of free nodes currently held by the pool.
func (p *NodePool[T]) Available() int { return len(p.free) }

// Peak returns the largest number of free nodes the pool has held at once.
func (p *NodePool[T]) Peak() int { return p.peak }

// Clear drops every free node.
func (p *NodePool[T]) Clear() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}
