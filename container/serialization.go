// Package container provides interfaces for managing container data structures.
// It supports JSON serialization and deserialization, allowing containers to
// convert their elements to and from JSON in a standardized manner.
package container

import "encoding/json"

// JSONSerializer defines an interface for containers that can serialize their
// elements to JSON.
type JSONSerializer interface {
	// ToJSON outputs the JSON representation of the container's elements.
	ToJSON() ([]byte, error)
}

// JSONDeserializer defines an interface for containers that can populate
// themselves from a JSON representation.
type JSONDeserializer interface {
	// FromJSON populates the container's elements from the input JSON representation.
	FromJSON([]byte) error
}

// JSONCodec defines an interface for containers that support both JSON
// serialization and deserialization. It combines the Marshaler and Unmarshaler
// interfaces for convenience.
//
// This interface is optional and may be implemented as needed.
type JSONCodec interface {
	json.Marshaler
	json.Unmarshaler
}
