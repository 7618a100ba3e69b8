package Trees

import (
	"strings"

	"github.com/g-m-twostay/bintree/Queues"
)

// Side names the slot a manually inserted node goes into.
type Side byte

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideRoot:
		return "root"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// ParseSide accepts "L"/"l", "R"/"r" and "root" in any case.
func ParseSide(tok string) (Side, error) {
	switch strings.ToLower(tok) {
	case "l", "left":
		return SideLeft, nil
	case "r", "right":
		return SideRight, nil
	case "root":
		return SideRoot, nil
	}
	return 0, &InvalidRequestError{"side must be L, R or root, got " + tok}
}

// InsertManual adds a leaf holding v. With SideRoot the tree must be empty and
// the leaf becomes the root; otherwise the leaf becomes the side child of the
// first node holding parent. On any error the tree is unchanged: the returned
// root is always the one to keep using.
func InsertManual[T comparable](root *Node[T], v, parent T, side Side) (*Node[T], error) {
	switch side {
	case SideRoot:
		if root != nil {
			return root, &InvalidRequestError{"root already exists"}
		}
		return NewNode(v), nil
	case SideLeft, SideRight:
	default:
		return root, &InvalidRequestError{"unknown side " + side.String()}
	}
	if root == nil {
		return nil, &InvalidRequestError{"tree is empty, insert a root first"}
	}
	p := Find(root, parent)
	if p == nil {
		return root, &NotFoundError[T]{parent}
	}
	slot := &p.Left
	if side == SideRight {
		slot = &p.Right
	}
	if *slot != nil {
		return root, &OccupiedSlotError[T]{parent, (*slot).Value, side}
	}
	*slot = NewNode(v)
	return root, nil
}

// BuildComplete fills a tree breadth first from values: values[0] is the
// root, and each dequeued parent takes the next value as its left child and
// the one after as its right child.
func BuildComplete[T any](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	root := NewNode(values[0])
	q := Queues.MakeArrayQueue[*Node[T]](uint(len(values)/2 + 1))
	enqueue(q, root)
	for i := 1; i < len(values); {
		p := dequeue(q)
		p.Left = NewNode(values[i])
		enqueue(q, p.Left)
		if i++; i < len(values) {
			p.Right = NewNode(values[i])
			enqueue(q, p.Right)
			i++
		}
	}
	return root
}
