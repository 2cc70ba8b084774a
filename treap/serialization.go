// Package treap provides JSON serialization and deserialization for the treap.
//
// This file extends the Tree type with methods to convert to and from JSON
// format, implementing the container.JSONSerializer and
// container.JSONDeserializer interfaces.
package treap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kuszmaul/reducetree/container"
	"github.com/kuszmaul/reducetree/reduce"
)

// Predefined errors for JSON operations.
var (
	ErrMarshalJSONFailure   = errors.New("failed to marshal tree to JSON")
	ErrUnmarshalJSONFailure = errors.New("failed to unmarshal JSON into tree")
)

// Ensure Tree implements required interfaces at compile time.
var (
	_ container.JSONSerializer   = (*Tree[string, int, int, reduce.Count[string, int]])(nil)
	_ container.JSONDeserializer = (*Tree[string, int, int, reduce.Count[string, int]])(nil)
	_ container.JSONCodec        = (*Tree[string, int, int, reduce.Count[string, int]])(nil)
)

// ToJSON serializes the tree into a JSON object.
//
// Converts the tree's key-value pairs into a JSON object where keys are the
// tree's keys and values are their corresponding values. Cached reductions
// are not serialized; they are rebuilt on load. Returns the JSON-encoded
// byte slice or an error if marshaling fails.
//
// Time complexity: O(n), where n is the number of nodes in the tree.
func (t *Tree[K, V, R, M]) ToJSON() ([]byte, error) {
	elems := make(map[K]V, t.Len())
	for k, v := range t.Iter() {
		elems[k] = v
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("treap: %w: %w", ErrMarshalJSONFailure, err)
	}

	return data, nil
}

// FromJSON populates the tree from a JSON object.
//
// Expects a JSON object (e.g., `{"a":1, "b":2}`). Clears the tree before
// loading and inserts each key-value pair, sampling a fresh priority for
// every node. Returns an error if the JSON is invalid or unmarshaling fails.
//
// Time complexity: O(n log n), where n is the number of key-value pairs in the JSON.
func (t *Tree[K, V, R, M]) FromJSON(data []byte) error {
	var elems map[K]V
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("treap: %w: %w", ErrUnmarshalJSONFailure, err)
	}

	t.Clear()

	for k, v := range elems {
		t.Insert(k, v)
	}

	return nil
}

// MarshalJSON implements json.Marshaler for seamless JSON encoding.
//
// Delegates to ToJSON() for consistency. Returns the JSON byte slice or an
// error if serialization fails.
//
// Time complexity: O(n), where n is the number of nodes in the tree.
func (t *Tree[K, V, R, M]) MarshalJSON() ([]byte, error) {
	return t.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler for seamless JSON decoding.
//
// Delegates to FromJSON() to populate the tree. Returns an error if
// deserialization fails.
//
// Time complexity: O(n log n), where n is the number of key-value pairs in the JSON.
func (t *Tree[K, V, R, M]) UnmarshalJSON(data []byte) error {
	return t.FromJSON(data)
}
