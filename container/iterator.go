// Package container provides generic iterator interfaces for traversing container data structures.
// It includes stateful iterators for key-value based collections,
// enabling flexible and type-safe iteration over various container implementations.
package container

// IteratorWithKey defines a generic, stateful iterator for containers with key-value pairs.
//
// This interface enables forward traversal of key-value collections, such as maps or custom
// associative structures, using type parameters K and V for type safety.
type IteratorWithKey[K, V any] interface {
	// Next advances the iterator to the next element and returns true if a next element exists.
	// On the first call, it positions the iterator at the first element if the container is non-empty.
	// The current key and value can then be retrieved with Key() and Value().
	Next() bool

	// Value returns the current element's value without modifying the iterator's state.
	Value() V

	// Key returns the current element's key without modifying the iterator's state.
	Key() K

	// Begin resets the iterator to its initial state, positioning it before the first element.
	// Call Next() to move to the first element if it exists.
	Begin()

	// First moves the iterator directly to the first element and returns true if one exists.
	// The first element's key and value can then be retrieved with Key() and Value().
	First() bool

	// NextTo advances the iterator to the next element that satisfies the given condition,
	// returning true if such an element is found. The matching element's key and value
	// can then be retrieved with Key() and Value().
	NextTo(fn func(key K, value V) bool) bool
}
