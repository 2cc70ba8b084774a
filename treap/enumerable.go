// Package treap provides Ruby-inspired enumerable functions over the treap.
//
// This file implements the container.EnumerableWithKey interface for the
// Tree type: Each, Any, All and Find over key-value pairs in ascending key
// order.
package treap

// Each invokes the provided function once for each entry, in ascending key
// order. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Each(fn func(key K, value V)) {
	for k, v := range t.Iter() {
		fn(k, v)
	}
}

// Any returns true if the provided function returns true for at least one
// entry. Iteration stops at the first match. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Any(fn func(key K, value V) bool) bool {
	for k, v := range t.Iter() {
		if fn(k, v) {
			return true
		}
	}

	return false
}

// All returns true if the provided function returns true for every entry.
// Iteration stops at the first failure. Time complexity: O(n).
func (t *Tree[K, V, R, M]) All(fn func(key K, value V) bool) bool {
	for k, v := range t.Iter() {
		if !fn(k, v) {
			return false
		}
	}

	return true
}

// Find returns the first entry, in ascending key order, for which the
// provided function returns true. If no entry satisfies the condition, it
// returns the zero values of K and V. Time complexity: O(n).
func (t *Tree[K, V, R, M]) Find(fn func(key K, value V) bool) (K, V) {
	for k, v := range t.Iter() {
		if fn(k, v) {
			return k, v
		}
	}

	var zeroKey K

	var zeroValue V

	return zeroKey, zeroValue
}
