package Trees

import "fmt"

// NotFoundError is returned when a value, a parent, or an ancestor target
// isn't in the tree.
type NotFoundError[T any] struct {
	Value T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: %v not found", e.Value)
}

// OccupiedSlotError is returned when a manual insertion targets a child slot
// that is already filled. The tree is left as it was.
type OccupiedSlotError[T any] struct {
	Parent, Occupant T
	Side             Side
}

func (e *OccupiedSlotError[T]) Error() string {
	return fmt.Sprintf("Trees: %s child of %v already exists (contains %v)", e.Side, e.Parent, e.Occupant)
}

// InvalidRequestError is returned for structural requests that can never
// succeed on the given tree: a root insert into a non-empty tree, a child
// insert into an empty tree, or an unknown side token.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "Trees: invalid request: " + e.Reason
}

// RankOutOfRangeError is returned by order statistic queries when the rank is
// below 1 or above the number of nodes.
type RankOutOfRangeError struct {
	Rank int
	Size uint
}

func (e *RankOutOfRangeError) Error() string {
	return fmt.Sprintf("Trees: rank %d out of range [1,%d]", e.Rank, e.Size)
}
