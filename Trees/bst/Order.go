package bst

import (
	"github.com/g-m-twostay/bintree/Stacks"
	"github.com/g-m-twostay/bintree/Trees"
)

// MthLargest returns the m-th largest value by walking the tree in reverse
// in-order (right, node, left) and counting visits; the walk stops at the m-th
// visit. m must be in [1, number of nodes], otherwise
// *Trees.RankOutOfRangeError is returned.
// Time: O(D+m)
func MthLargest[T any](root *Trees.Node[T], m int) (T, error) {
	if m <= 0 {
		return *new(T), &Trees.RankOutOfRangeError{Rank: m, Size: Trees.Count(root)}
	}
	seen := 0
	st := Stacks.MakeArrayStack[*Trees.Node[T]]()
	for cur := root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.Right {
			push(st, cur)
		}
		cur = pop(st)
		if seen++; seen == m {
			return cur.Value, nil
		}
		cur = cur.Left
	}
	return *new(T), &Trees.RankOutOfRangeError{Rank: m, Size: uint(seen)}
}
