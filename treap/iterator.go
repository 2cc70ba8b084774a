// Package treap provides a stateful iterator for traversing the treap.
//
// Nodes carry no parent pointers, so the iterator keeps the pending spine on
// an explicit stack. Forward traversal over the whole tree is O(n) with
// amortized O(1) steps.
package treap

import (
	"errors"

	"github.com/golang-collections/collections/stack"

	"github.com/kuszmaul/reducetree/container"
)

// Predefined errors for iterator operations.
var (
	ErrInvalidIteratorPosition = errors.New("iterator accessed at invalid position")
)

// Ensure Iterator implements container.IteratorWithKey at compile time.
var _ container.IteratorWithKey[string, int] = (*Iterator[string, int, int])(nil)

// Iterator provides forward traversal over a Tree's key-value pairs in
// ascending key order.
//
// It holds the unvisited left spine of the tree on a stack, popping one node
// per step and pushing the left spine of that node's right subtree. The
// iterator is read-only; mutating the tree during iteration invalidates it.
type Iterator[K comparable, V any, R any] struct {
	root    *Node[K, V, R] // Root captured at creation time.
	node    *Node[K, V, R] // Current node, nil before the first Next.
	pending *stack.Stack   // Nodes whose entry and right subtree are unvisited.
}

// Iterator creates a new iterator for the tree.
//
// Starts before the first element; use Next() to reach it.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Iterator() *Iterator[K, V, R] {
	it := &Iterator[K, V, R]{root: t.root}
	it.Begin()

	return it
}

// Next advances the iterator to the next element in in-order traversal.
//
// Returns true if the iterator is at a valid element after moving, false if
// it reaches the end. Time complexity: amortized O(1).
func (it *Iterator[K, V, R]) Next() bool {
	if it.pending.Len() == 0 {
		it.node = nil

		return false
	}

	n := it.pending.Pop().(*Node[K, V, R])
	for child := n.right; child != nil; child = child.left {
		it.pending.Push(child)
	}

	it.node = n

	return true
}

// Key returns the current element's key.
//
// Panics if the iterator is not at a valid position.
// Time complexity: O(1).
func (it *Iterator[K, V, R]) Key() K {
	if it.node == nil {
		panic("treap: " + ErrInvalidIteratorPosition.Error())
	}

	return it.node.key
}

// Value returns the current element's value.
//
// Panics if the iterator is not at a valid position.
// Time complexity: O(1).
func (it *Iterator[K, V, R]) Value() V {
	if it.node == nil {
		panic("treap: " + ErrInvalidIteratorPosition.Error())
	}

	return it.node.value
}

// Node returns the current node.
//
// Returns nil if the iterator is before the first or past the last element.
// Time complexity: O(1).
func (it *Iterator[K, V, R]) Node() *Node[K, V, R] {
	return it.node
}

// Begin resets the iterator to before the first element.
//
// Use Next() to move to the first element. Time complexity: O(log n) expected.
func (it *Iterator[K, V, R]) Begin() {
	it.node = nil
	it.pending = stack.New()

	for n := it.root; n != nil; n = n.left {
		it.pending.Push(n)
	}
}

// First moves the iterator to the first element.
//
// Returns true if the tree is non-empty, false otherwise.
// Time complexity: O(log n) expected.
func (it *Iterator[K, V, R]) First() bool {
	it.Begin()

	return it.Next()
}

// NextTo advances to the next element satisfying the given condition.
//
// Moves forward from the current position until an element matches the
// predicate or the end is reached. Returns true if a match is found.
// Time complexity: O(n) in the worst case.
func (it *Iterator[K, V, R]) NextTo(f func(key K, value V) bool) bool {
	for it.Next() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}
