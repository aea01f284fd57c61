package core

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ib-77/railflow/pkg/rop/solo"
)

var ErrNilTransform = errors.New("core: nil transform")

func mustTransform(ok bool) {
	if !ok {
		panic(ErrNilTransform)
	}
}

// Then attaches a success step. A forward node is replaced by one running its
// transform followed by fn; any other node gets fn appended after it.
func (n *Node) Then(fn ForwardFunc) *Node {
	mustTransform(fn != nil)

	if n.forward != nil {
		return &Node{
			id:      uuid.New(),
			forward: compose(n.forward, fn),
			parent:  n.parent,
			depth:   n.depth,
		}
	}
	return n.child(&Node{id: uuid.New(), forward: fn})
}

// Else attaches a recovery step. A recovery node is replaced by one that hands
// its own failure to fn; any other node gets fn appended after it.
func (n *Node) Else(fn RecoverFunc) *Node {
	mustTransform(fn != nil)

	if n.recover != nil {
		return &Node{
			id:      uuid.New(),
			recover: solo.Escalate[any](n.recover, fn),
			parent:  n.parent,
			depth:   n.depth,
		}
	}
	return n.child(&Node{id: uuid.New(), recover: fn})
}

// Combine splices other after n. The result carries other's own transform, so
// it stays foldable, and its ancestors are n's steps followed by other's
// ancestors.
func (n *Node) Combine(other *Node) *Node {
	parent := n
	for _, a := range other.Ancestors() {
		parent = parent.child(&Node{id: a.id, forward: a.forward, recover: a.recover})
	}
	return parent.child(&Node{id: other.id, forward: other.forward, recover: other.recover})
}

func (n *Node) child(c *Node) *Node {
	c.parent = n
	c.depth = n.depth + 1
	return c
}

func compose(first, next ForwardFunc) ForwardFunc {
	return func(v any) (any, error) {
		mid, err := first(v)
		if err != nil {
			return nil, err
		}
		return next(mid)
	}
}
