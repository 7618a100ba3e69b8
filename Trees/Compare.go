package Trees

// Identical reports whether both trees are empty, or both have equal roots
// and identical left and right subtrees. Recursive.
func Identical[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && Identical(a.Left, b.Left) && Identical(a.Right, b.Right)
}

// Mirror reports whether b is a mirror image of a: both empty, or equal roots
// where a's left mirrors b's right and a's right mirrors b's left. Recursive.
func Mirror[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && Mirror(a.Left, b.Right) && Mirror(a.Right, b.Left)
}

// MirrorOf returns a new tree with the children of every node swapped. root
// is not modified. Recursive.
func MirrorOf[T any](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	return &Node[T]{root.Value, MirrorOf(root.Right), MirrorOf(root.Left)}
}
