package hxsel

import "github.com/pthm/hxsel/lib/codec"

// Encodable is an alias for codec.Encodable for convenience.
type Encodable = codec.Encodable

// Decodable is an alias for codec.Decodable for convenience.
type Decodable = codec.Decodable

// MarshalState serializes a value to its compact textual form.
// See the lib/codec package for the format.
func MarshalState(v Encodable) (string, error) {
	return codec.Marshal(v)
}

// UnmarshalState decodes a textual form produced by MarshalState into v.
func UnmarshalState(encoded string, v Decodable) error {
	return codec.Unmarshal(encoded, v)
}
