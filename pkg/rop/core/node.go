package core

import (
	"github.com/google/uuid"
	"github.com/ib-77/railflow/pkg/rop"
)

type Kind uint8

const (
	KindForward Kind = iota + 1
	KindRecovery
)

func (k Kind) String() string {
	switch k {
	case KindForward:
		return "forward"
	case KindRecovery:
		return "recovery"
	default:
		return "unknown"
	}
}

// ForwardFunc is a type-erased success transform.
type ForwardFunc func(v any) (any, error)

// RecoverFunc is a type-erased failure transform. A failed result means the
// recovery itself failed and its error escalates.
type RecoverFunc func(err error) rop.Result[any]

// Node is one immutable step of a workflow. It holds exactly one transform and
// a link to its last ancestor; the ancestor list is shared between nodes.
type Node struct {
	id      uuid.UUID
	forward ForwardFunc
	recover RecoverFunc
	parent  *Node
	depth   int
}

// StepInfo describes one entry of a finalized step sequence.
type StepInfo struct {
	Index int
	Kind  Kind
	ID    uuid.UUID
}

// Forward creates a root node with a success transform and no ancestors.
func Forward(fn ForwardFunc) *Node {
	mustTransform(fn != nil)
	return &Node{id: uuid.New(), forward: fn}
}

func (n *Node) ID() uuid.UUID {
	return n.id
}

func (n *Node) Kind() Kind {
	if n.forward != nil {
		return KindForward
	}
	return KindRecovery
}

// Len is the length of the finalized step sequence.
func (n *Node) Len() int {
	return n.depth + 1
}

// Ancestors returns the nodes that run before n, oldest first.
func (n *Node) Ancestors() []*Node {
	out := make([]*Node, n.depth)
	for i, p := n.depth-1, n.parent; p != nil; i, p = i-1, p.parent {
		out[i] = p
	}
	return out
}

// Steps returns the finalized step sequence: the ancestors followed by n.
func (n *Node) Steps() []*Node {
	return append(n.Ancestors(), n)
}

func (n *Node) Describe() []StepInfo {
	steps := n.Steps()
	infos := make([]StepInfo, len(steps))
	for i, s := range steps {
		infos[i] = StepInfo{Index: i, Kind: s.Kind(), ID: s.id}
	}
	return infos
}
