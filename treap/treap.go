// Package treap implements a randomized balanced binary search tree that
// maintains a user-supplied monoid reduction over every subtree.
//
// The tree is ordered by key and heap-ordered by a random priority drawn per
// node, which yields O(log n) expected time for insertion, deletion, search
// and range folds without explicit rebalancing metadata. Every node caches
// the reduction of its subtree, so the fold over all keys below a query key
// is answered in O(log n) expected time as well. Keys are unique; inserting
// a present key is a no-op. This implementation is not thread-safe.
//
// Reference: https://en.wikipedia.org/wiki/Treap
package treap

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/kuszmaul/reducetree/cmp"
	"github.com/kuszmaul/reducetree/container"
	"github.com/kuszmaul/reducetree/reduce"
)

// Reducer is the monoid a Tree accumulates over every contiguous key range.
//
// Implementations must be stateless: the tree instantiates the zero value of
// the type argument and calls its methods directly, so the contract is
// resolved at compile time with no per-node indirection. Combine must be
// associative; it need not be commutative, because the tree always combines
// in ascending key order. Equal is consulted only by Validate.
type Reducer[K, V, R any] interface {
	// Identity returns the result of folding zero entries.
	Identity() R

	// Seed returns the contribution of a single entry.
	Seed(key K, value V) R

	// Combine folds two adjacent partial results, left before right.
	Combine(left, right R) R

	// Equal reports whether two fold results are equal.
	Equal(a, b R) bool
}

// Node represents a single element in the treap.
//
// A node owns its two children exclusively; subtrees are never shared between
// trees. Key, value and priority are fixed at insertion time and never change
// while the node is in a tree.
type Node[K comparable, V any, R any] struct {
	priority uint64         // Heap-ordering priority, sampled at insertion
	key      K              // The key used for ordering
	value    V              // The value associated with the key
	reduced  R              // Cached reduction of the subtree rooted here
	left     *Node[K, V, R] // Left child node
	right    *Node[K, V, R] // Right child node
}

// Key returns the key stored in the node.
// Time complexity: O(1).
func (n *Node[K, V, R]) Key() K {
	return n.key
}

// Value returns the value associated with the node's key.
// Time complexity: O(1).
func (n *Node[K, V, R]) Value() V {
	return n.value
}

// Reduced returns the cached reduction of the subtree rooted at this node.
//
// This is the fold of every entry in the subtree, not a range fold relative
// to the whole tree. Time complexity: O(1).
func (n *Node[K, V, R]) Reduced() R {
	return n.reduced
}

// Priority returns the node's heap-ordering priority.
// Time complexity: O(1).
func (n *Node[K, V, R]) Priority() uint64 {
	return n.priority
}

// Left returns the left child of the node, or nil if none exists.
// Time complexity: O(1).
func (n *Node[K, V, R]) Left() *Node[K, V, R] {
	return n.left
}

// Right returns the right child of the node, or nil if none exists.
// Time complexity: O(1).
func (n *Node[K, V, R]) Right() *Node[K, V, R] {
	return n.right
}

// Size returns the number of nodes in the subtree rooted at this node.
// Computed dynamically by traversing the subtree. Time complexity: O(n).
func (n *Node[K, V, R]) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.left.Size() + n.right.Size()
}

// String returns a string representation of the node.
// Time complexity: O(1).
func (n *Node[K, V, R]) String() string {
	return fmt.Sprintf("%v", n.key)
}

// Ensure Tree implements the container contracts at compile time.
var (
	_ container.OrderedMap[int, int]        = (*Tree[int, int, int, reduce.Count[int, int]])(nil)
	_ container.Tree[int]                   = (*Tree[int, int, int, reduce.Count[int, int]])(nil)
	_ container.EnumerableWithKey[int, int] = (*Tree[int, int, int, reduce.Count[int, int]])(nil)
)

// Tree manages a treap storing key-value pairs together with the cached
// reduction of every subtree.
//
// K must be comparable and compatible with the provided comparator.
// V can be any type. M supplies the reduction monoid with carrier R.
type Tree[K comparable, V any, R any, M Reducer[K, V, R]] struct {
	root       *Node[K, V, R]    // Root node of the tree
	len        int               // Number of nodes in the tree
	rng        *rand.Rand        // Per-tree priority source
	comparator cmp.Comparator[K] // Comparator for ordering keys
	reducer    M                 // Stateless reduction monoid
}

// New creates a new treap with a default comparator for ordered types.
//
// K must implement cmp.Ordered (e.g., int, string). Time complexity: O(1).
func New[K cmp.Ordered, V any, R any, M Reducer[K, V, R]]() *Tree[K, V, R, M] {
	return NewWith[K, V, R, M](cmp.GenericComparator[K])
}

// NewWith creates a new treap with a custom comparator.
//
// The comparator defines the key ordering. Each tree draws its priorities
// from its own independently seeded source, so the shapes of distinct trees
// are uncorrelated. Time complexity: O(1).
func NewWith[K comparable, V any, R any, M Reducer[K, V, R]](comparator cmp.Comparator[K]) *Tree[K, V, R, M] {
	return &Tree[K, V, R, M]{
		comparator: comparator,
		rng:        rand.New(rand.NewSource(newSeed())),
	}
}

// newSeed returns a seed from the system entropy source, falling back to the
// wall clock if that source is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Insert adds a key-value pair to the tree.
//
// Returns true if the pair was inserted, or false if the key is already
// present, in which case the tree is left unchanged. An existing entry is
// never overwritten; use Put for replace semantics.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Insert(key K, value V) bool {
	if t.lookup(key) != nil {
		return false
	}

	n := &Node[K, V, R]{priority: t.rng.Uint64(), key: key, value: value}
	t.root = t.insertNode(t.root, n)
	t.len++

	return true
}

// Put associates value with key, replacing any existing entry.
//
// Nodes are immutable once installed, so replacement is a delete followed by
// a fresh insert with a newly sampled priority.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Put(key K, value V) {
	t.Delete(key)
	t.Insert(key, value)
}

// Delete removes the node with the specified key from the tree.
//
// Returns true if a node was removed, false if the key was not found.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Delete(key K) bool {
	root, removed := t.removeNode(t.root, key)
	t.root = root

	if removed {
		t.len--
	}

	return removed
}

// Get retrieves the value associated with the specified key.
//
// Returns the value and true if found, or a zero value and false if not.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Get(key K) (val V, ok bool) {
	if node := t.lookup(key); node != nil {
		return node.value, true
	}

	var zeroVal V

	return zeroVal, false
}

// GetNode retrieves the node associated with the specified key.
//
// Returns the node if found, or nil if not. The node exposes the key, the
// value and the cached reduction of the subtree rooted at it.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) GetNode(key K) *Node[K, V, R] {
	return t.lookup(key)
}

// Has checks if the specified key exists in the tree.
//
// Returns true if the key is found, false otherwise.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Has(key K) bool {
	return t.lookup(key) != nil
}

// PrefixLess returns the fold of every entry whose key is strictly less than
// the given key, combined in ascending key order.
//
// The given key itself need not be present. Returns the monoid identity when
// no key is below the bound. Because entries are combined strictly in
// in-order sequence, non-commutative reducers observe their entries in
// ascending key order. Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) PrefixLess(key K) R {
	return t.prefixLess(t.root, key)
}

// Reduce returns the fold of every entry in the tree.
//
// Returns the monoid identity on an empty tree. Time complexity: O(1).
func (t *Tree[K, V, R, M]) Reduce() R {
	if t.root == nil {
		return t.reducer.Identity()
	}

	return t.root.reduced
}

// ForAll calls f for every entry in ascending key order and reports whether
// f returned true for all of them.
//
// Traversal stops at the first entry for which f returns false. The reduced
// argument passed to f is the cached reduction of the subtree rooted at the
// visited node, not a running prefix; use PrefixLess for prefix folds.
// Returns true on an empty tree. Time complexity: O(n).
func (t *Tree[K, V, R, M]) ForAll(f func(key K, value V, reduced R) bool) bool {
	return t.forAllNode(t.root, f)
}

// GetBeginNode returns the leftmost node (minimum key), or nil if the tree is empty.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) GetBeginNode() *Node[K, V, R] {
	return getLeftNode(t.root)
}

// GetEndNode returns the rightmost node (maximum key), or nil if the tree is empty.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) GetEndNode() *Node[K, V, R] {
	return getRightNode(t.root)
}

// Begin returns the minimum key and value in the tree.
//
// Returns found as true if an element is found, false otherwise.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Begin() (key K, value V, found bool) {
	node := t.GetBeginNode()
	if node != nil {
		return node.key, node.value, true
	}

	var zeroKey K

	var zeroValue V

	return zeroKey, zeroValue, false
}

// End returns the maximum key and value in the tree.
//
// Returns found as true if an element is found, false otherwise.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) End() (key K, value V, found bool) {
	node := t.GetEndNode()
	if node != nil {
		return node.key, node.value, true
	}

	var zeroKey K

	var zeroValue V

	return zeroKey, zeroValue, false
}

// DeleteBegin removes the minimum key-value pair from the tree.
//
// Returns the removed key, value, and true if an element was removed, false otherwise.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) DeleteBegin() (key K, value V, removed bool) {
	node := t.GetBeginNode()
	if node != nil {
		k, v := node.key, node.value
		t.Delete(k)

		return k, v, true
	}

	var zeroKey K

	var zeroValue V

	return zeroKey, zeroValue, false
}

// DeleteEnd removes the maximum key-value pair from the tree.
//
// Returns the removed key, value, and true if an element was removed, false otherwise.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) DeleteEnd() (key K, value V, removed bool) {
	node := t.GetEndNode()
	if node != nil {
		k, v := node.key, node.value
		t.Delete(k)

		return k, v, true
	}

	var zeroKey K

	var zeroValue V

	return zeroKey, zeroValue, false
}

// Floor finds the largest node with a key less than or equal to the given key.
//
// Returns the node and true if found, or nil and false if not.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Floor(key K) (*Node[K, V, R], bool) {
	var floor *Node[K, V, R]

	node := t.root
	for node != nil {
		switch cmp := t.comparator(key, node.key); {
		case cmp == 0:
			return node, true
		case cmp > 0:
			floor = node
			node = node.right
		default:
			node = node.left
		}
	}

	return floor, floor != nil
}

// Ceiling finds the smallest node with a key greater than or equal to the given key.
//
// Returns the node and true if found, or nil and false if not.
// Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) Ceiling(key K) (*Node[K, V, R], bool) {
	var ceil *Node[K, V, R]

	node := t.root
	for node != nil {
		switch cmp := t.comparator(key, node.key); {
		case cmp == 0:
			return node, true
		case cmp < 0:
			ceil = node
			node = node.left
		default:
			node = node.right
		}
	}

	return ceil, ceil != nil
}

// SplitByKey partitions the tree into two trees: one holding every entry with
// a key below the given key, the other every entry above it.
//
// The given key must not be present in the tree; splitting on a present key
// is a programmer error and panics. The receiver is left empty. The returned
// trees use the receiver's comparator and carry their own priority sources.
// Time complexity: O(n) because the partition sizes are recounted.
func (t *Tree[K, V, R, M]) SplitByKey(key K) (less, greater *Tree[K, V, R, M]) {
	less = NewWith[K, V, R, M](t.comparator)
	greater = NewWith[K, V, R, M](t.comparator)

	l, g := t.splitNode(t.root, key)
	less.root, greater.root = l, g
	less.len = l.Size()
	greater.len = t.len - less.len

	t.root = nil
	t.len = 0

	return less, greater
}

// JoinExclusive appends every entry of greater to the tree.
//
// Every key in greater must be strictly above every key in the receiver;
// joining overlapping ranges is a programmer error and panics. greater is
// left empty. Time complexity: O(log n) expected.
func (t *Tree[K, V, R, M]) JoinExclusive(greater *Tree[K, V, R, M]) {
	if t.root != nil && greater.root != nil {
		if t.comparator(getRightNode(t.root).key, getLeftNode(greater.root).key) >= 0 {
			panic("treap: join of trees whose key ranges are not disjoint")
		}
	}

	t.root = t.mergeNodes(t.root, greater.root)
	t.len += greater.len

	greater.root = nil
	greater.len = 0
}

// Keys returns all keys in in-order sequence.
// Time complexity: O(n).
func (t *Tree[K, V, R, M]) Keys() []K {
	keys := make([]K, 0, t.len)
	for k := range t.Iter() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values in in-order sequence based on their keys.
// Time complexity: O(n).
func (t *Tree[K, V, R, M]) Values() []V {
	values := make([]V, 0, t.len)
	for _, v := range t.Iter() {
		values = append(values, v)
	}

	return values
}

// ToSlice returns all values in in-order sequence.
// Time complexity: O(n).
func (t *Tree[K, V, R, M]) ToSlice() []V {
	return t.Values()
}

// Entries returns all keys and values in in-order sequence.
//
// More efficient than calling Keys() and Values() separately as it traverses
// the tree only once. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Entries() ([]K, []V) {
	keys := make([]K, 0, t.len)
	vals := make([]V, 0, t.len)

	for k, v := range t.Iter() {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	return keys, vals
}

// Len returns the number of nodes in the tree.
// Time complexity: O(1).
func (t *Tree[K, V, R, M]) Len() int {
	return t.len
}

// IsEmpty checks if the tree contains no nodes.
// Time complexity: O(1).
func (t *Tree[K, V, R, M]) IsEmpty() bool {
	return t.len == 0
}

// Clear removes all nodes from the tree.
// Time complexity: O(1).
func (t *Tree[K, V, R, M]) Clear() {
	t.root = nil
	t.len = 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
//
// An empty tree has height 0. With random priorities the expected height is
// O(log n). Time complexity: O(n).
func (t *Tree[K, V, R, M]) Height() int {
	return height(t.root)
}

// Clone creates a deep copy of the tree.
//
// The new tree has independent nodes from the original and draws future
// priorities from its own source. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Clone() *Tree[K, V, R, M] {
	newTree := NewWith[K, V, R, M](t.comparator)
	newTree.root = cloneNode(t.root)
	newTree.len = t.len

	return newTree
}

// Iter returns an iterator over all key-value pairs in sorted order.
//
// Conforms to Go 1.23+ iterator design (iter.Seq2). Yields pairs via a
// recursive in-order traversal; nodes carry no parent pointers, so traversal
// state lives on the call stack. Overall iteration complexity is O(n).
func (t *Tree[K, V, R, M]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *Node[K, V, R]) bool
		walk = func(n *Node[K, V, R]) bool {
			if n == nil {
				return true
			}

			return walk(n.left) && yield(n.key, n.value) && walk(n.right)
		}

		walk(t.root)
	}
}

// RIter returns a reverse iterator over all key-value pairs (from largest to smallest).
//
// Conforms to Go 1.23+ iterator design (iter.Seq2). Yields pairs via a
// recursive reverse in-order traversal. Overall iteration complexity is O(n).
func (t *Tree[K, V, R, M]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *Node[K, V, R]) bool
		walk = func(n *Node[K, V, R]) bool {
			if n == nil {
				return true
			}

			return walk(n.right) && yield(n.key, n.value) && walk(n.left)
		}

		walk(t.root)
	}
}

// Validate checks every structural invariant of the tree.
//
// It verifies the search order of keys, the heap order of priorities (ties
// between parent and child are tolerated), the cached reduction of every
// subtree against a recomputation, and the running size counter. All
// violations found are aggregated into the returned error; nil means the
// tree is consistent. Intended for tests and debugging. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Validate() error {
	count, err := t.validateNode(t.root, nil, nil)

	errs := multierror.Append(nil, err)
	if count != t.len {
		errs = multierror.Append(errs, fmt.Errorf("treap: %w: counted %d nodes, length says %d", ErrLengthMismatch, count, t.len))
	}

	return errs.ErrorOrNil()
}

// Dump returns a parenthesised rendering of the tree for debugging.
//
// Each node prints as (key value priority reduced left right) with _ in
// place of a nil child. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Dump() string {
	var sb strings.Builder

	dumpNode(t.root, &sb)

	return sb.String()
}

// String returns a string representation of the tree.
// Time complexity: O(n).
func (t *Tree[K, V, R, M]) String() string {
	if t.IsEmpty() {
		return "Treap[]"
	}

	var sb strings.Builder

	sb.WriteString("Treap\n")
	t.output(t.root, "", true, &sb)

	return sb.String()
}

// Comparator returns the comparator used by the tree.
// Time complexity: O(1).
func (t *Tree[K, V, R, M]) Comparator() cmp.Comparator[K] {
	return t.comparator
}

// Reducer returns the tree's reduction monoid.
// Time complexity: O(1).
func (t *Tree[K, V, R, M]) Reducer() M {
	return t.reducer
}

// Predefined errors reported by Validate.
var (
	ErrOrderViolation    = errors.New("key order violated")
	ErrHeapViolation     = errors.New("priority heap order violated")
	ErrReductionMismatch = errors.New("cached reduction does not match recomputation")
	ErrLengthMismatch    = errors.New("length counter does not match node count")
)
