// Package treap provides the subtree-level operations behind the Tree facade.
//
// This file implements the recursive node algebra:
// lookup, split, merge, insert, removal, prefix folds, short-circuiting
// traversal and invariant validation. Every routine that replaces a child of
// a node recomputes that node's cached reduction before returning its handle,
// so the reduction invariant holds on every subtree a caller can observe.
package treap

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// recompute refreshes n's cached reduction from its own entry and the cached
// reductions of its children, combining strictly in in-order sequence.
func (t *Tree[K, V, R, M]) recompute(n *Node[K, V, R]) {
	r := t.reducer.Seed(n.key, n.value)

	if n.left != nil {
		r = t.reducer.Combine(n.left.reduced, r)
	}

	if n.right != nil {
		r = t.reducer.Combine(r, n.right.reduced)
	}

	n.reduced = r
}

// lookup finds the node with the specified key, or nil if not found.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) lookup(key K) *Node[K, V, R] {
	node := t.root
	for node != nil {
		switch cmp := t.comparator(key, node.key); {
		case cmp == 0:
			return node
		case cmp < 0:
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// splitNode partitions the subtree rooted at root into the entries below key
// and the entries above key.
//
// key must be absent from the subtree; hitting it is a programmer error and
// panics rather than silently producing a duplicate. Reductions along the
// touched spine are recomputed on the way back up.
func (t *Tree[K, V, R, M]) splitNode(root *Node[K, V, R], key K) (less, greater *Node[K, V, R]) {
	if root == nil {
		return nil, nil
	}

	switch cmp := t.comparator(key, root.key); {
	case cmp < 0:
		less, root.left = t.splitNode(root.left, key)
		t.recompute(root)

		return less, root
	case cmp > 0:
		root.right, greater = t.splitNode(root.right, key)
		t.recompute(root)

		return root, greater
	default:
		panic(fmt.Sprintf("treap: split on key %v which is present in the tree", key))
	}
}

// mergeNodes joins two subtrees, every key in a being below every key in b.
//
// The subtree with the higher priority becomes the root and the other is
// merged into its adjacent spine, so the heap order is preserved without
// rotations. Ties go to a. Reductions are recomputed bottom-up.
func (t *Tree[K, V, R, M]) mergeNodes(a, b *Node[K, V, R]) *Node[K, V, R] {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	if a.priority >= b.priority {
		a.right = t.mergeNodes(a.right, b)
		t.recompute(a)

		return a
	}

	b.left = t.mergeNodes(a, b.left)
	t.recompute(b)

	return b
}

// insertNode places the fresh, childless node n into the subtree rooted at
// root and returns the new subtree root.
//
// n's key must be absent from the subtree and its priority already sampled.
// While n's priority does not exceed the current root's, the root stays and
// the recursion descends by key; equal priorities keep the existing root.
// Once n's priority wins, the subtree is split around n's key and the halves
// become n's children.
func (t *Tree[K, V, R, M]) insertNode(root, n *Node[K, V, R]) *Node[K, V, R] {
	if root == nil {
		t.recompute(n)

		return n
	}

	if n.priority <= root.priority {
		if t.comparator(n.key, root.key) < 0 {
			root.left = t.insertNode(root.left, n)
		} else {
			root.right = t.insertNode(root.right, n)
		}

		t.recompute(root)

		return root
	}

	n.left, n.right = t.splitNode(root, n.key)
	t.recompute(n)

	return n
}

// removeNode deletes key from the subtree rooted at root, reporting whether
// a node was removed. The removed node's children are merged in its place.
func (t *Tree[K, V, R, M]) removeNode(root *Node[K, V, R], key K) (*Node[K, V, R], bool) {
	if root == nil {
		return nil, false
	}

	var removed bool

	switch cmp := t.comparator(key, root.key); {
	case cmp < 0:
		root.left, removed = t.removeNode(root.left, key)
	case cmp > 0:
		root.right, removed = t.removeNode(root.right, key)
	default:
		return t.mergeNodes(root.left, root.right), true
	}

	if removed {
		t.recompute(root)
	}

	return root, removed
}

// prefixLess folds every entry below key in the subtree rooted at root,
// using cached subtree reductions to touch only the search path.
func (t *Tree[K, V, R, M]) prefixLess(root *Node[K, V, R], key K) R {
	if root == nil {
		return t.reducer.Identity()
	}

	switch cmp := t.comparator(key, root.key); {
	case cmp < 0:
		return t.prefixLess(root.left, key)
	case cmp == 0:
		if root.left != nil {
			return root.left.reduced
		}

		return t.reducer.Identity()
	default:
		r := t.reducer.Seed(root.key, root.value)
		if root.left != nil {
			r = t.reducer.Combine(root.left.reduced, r)
		}

		return t.reducer.Combine(r, t.prefixLess(root.right, key))
	}
}

// forAllNode visits the subtree in in-order sequence, stopping at the first
// entry for which f returns false.
func (t *Tree[K, V, R, M]) forAllNode(root *Node[K, V, R], f func(key K, value V, reduced R) bool) bool {
	if root == nil {
		return true
	}

	return t.forAllNode(root.left, f) &&
		f(root.key, root.value, root.reduced) &&
		t.forAllNode(root.right, f)
}

// validateNode checks the subtree rooted at n against the search-order bounds
// (lo, hi), the priority heap order relative to each child, and the cached
// reduction. nil bounds are unbounded. It returns the subtree node count and
// the aggregate of every violation found.
func (t *Tree[K, V, R, M]) validateNode(n *Node[K, V, R], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}

	var errs *multierror.Error

	if lo != nil && t.comparator(n.key, *lo) <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: key %v is not above bound %v", ErrOrderViolation, n.key, *lo))
	}

	if hi != nil && t.comparator(n.key, *hi) >= 0 {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: key %v is not below bound %v", ErrOrderViolation, n.key, *hi))
	}

	if n.left != nil && n.left.priority > n.priority {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: left child of %v has priority %d > %d", ErrHeapViolation, n.key, n.left.priority, n.priority))
	}

	if n.right != nil && n.right.priority > n.priority {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: right child of %v has priority %d > %d", ErrHeapViolation, n.key, n.right.priority, n.priority))
	}

	// Children are validated below, so their cached reductions can be
	// trusted here; the recomputation stays O(1) per node.
	want := t.reducer.Seed(n.key, n.value)
	if n.left != nil {
		want = t.reducer.Combine(n.left.reduced, want)
	}

	if n.right != nil {
		want = t.reducer.Combine(want, n.right.reduced)
	}

	if !t.reducer.Equal(n.reduced, want) {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: node %v caches %v, recomputation yields %v", ErrReductionMismatch, n.key, n.reduced, want))
	}

	leftCount, err := t.validateNode(n.left, lo, &n.key)
	errs = multierror.Append(errs, err)

	rightCount, err := t.validateNode(n.right, &n.key, hi)
	errs = multierror.Append(errs, err)

	return 1 + leftCount + rightCount, errs.ErrorOrNil()
}

// height returns the number of nodes on the longest path from n to a leaf.
func height[K comparable, V any, R any](n *Node[K, V, R]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// getLeftNode finds the leftmost node in the subtree, or nil if empty.
// Time complexity: O(log n) expected.
func getLeftNode[K comparable, V any, R any](node *Node[K, V, R]) *Node[K, V, R] {
	for node != nil && node.left != nil {
		node = node.left
	}

	return node
}

// getRightNode finds the rightmost node in the subtree, or nil if empty.
// Time complexity: O(log n) expected.
func getRightNode[K comparable, V any, R any](node *Node[K, V, R]) *Node[K, V, R] {
	for node != nil && node.right != nil {
		node = node.right
	}

	return node
}

// cloneNode creates a deep copy of a node and its subtree.
func cloneNode[K comparable, V any, R any](node *Node[K, V, R]) *Node[K, V, R] {
	if node == nil {
		return nil
	}

	return &Node[K, V, R]{
		priority: node.priority,
		key:      node.key,
		value:    node.value,
		reduced:  node.reduced,
		left:     cloneNode(node.left),
		right:    cloneNode(node.right),
	}
}

// dumpNode renders the subtree as (key value priority reduced left right),
// with _ standing for a nil child.
func dumpNode[K comparable, V any, R any](n *Node[K, V, R], sb *strings.Builder) {
	if n == nil {
		sb.WriteByte('_')

		return
	}

	fmt.Fprintf(sb, "(%v %v %d %v ", n.key, n.value, n.priority, n.reduced)
	dumpNode(n.left, sb)
	sb.WriteByte(' ')
	dumpNode(n.right, sb)
	sb.WriteByte(')')
}

// output recursively builds a string representation of the tree for printing.
func (t *Tree[K, V, R, M]) output(node *Node[K, V, R], prefix string, isTail bool, sb *strings.Builder) {
	if node.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}

		t.output(node.right, newPrefix, false, sb)
	}

	sb.WriteString(prefix)

	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}

	sb.WriteString(node.String() + "\n")

	if node.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}

		t.output(node.left, newPrefix, true, sb)
	}
}
