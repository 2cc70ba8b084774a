package container

import "iter"

// Map interface that all maps implement.
type Map[K comparable, V any] interface {
	// Put associates value with key, replacing any previous association.
	Put(key K, value V)

	// Get returns the value associated with key, and whether it was found.
	Get(key K) (value V, found bool)

	// Delete removes the association for key, reporting whether one existed.
	Delete(key K) bool

	// Has reports whether key is present.
	Has(key K) bool

	// Keys returns all keys. The order is implementation-dependent.
	Keys() []K

	Container[V]
}

// OrderedMap interface that all maps with ordered keys implement.
//
// Iteration yields entries in ascending key order as defined by the map's
// comparator.
type OrderedMap[K comparable, V any] interface {
	Map[K, V]

	// Begin returns the minimum key and its value, with found false on an
	// empty map.
	Begin() (key K, value V, found bool)

	// End returns the maximum key and its value, with found false on an
	// empty map.
	End() (key K, value V, found bool)

	// Iter returns an iterator over all entries in ascending key order.
	Iter() iter.Seq2[K, V]

	// RIter returns an iterator over all entries in descending key order.
	RIter() iter.Seq2[K, V]
}
