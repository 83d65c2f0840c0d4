// Package codec serializes small typed values to a compact textual form and
// restores them into named concrete types.
//
// Values export their fields as a plain map (Encodable), the map is packed
// with msgpack and base64url-encoded. Decoding reverses the transport steps
// into a plain map, then copies recognized fields into a caller-supplied
// concrete value (Decodable) - the value's behavior comes from its type, not
// from the wire data, so methods work immediately after decoding.
package codec

import (
	"encoding/base64"
	"errors"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for codec operations.
var (
	// ErrNotEncodable indicates the value does not implement Encodable.
	ErrNotEncodable = errors.New("codec: type does not implement Encodable")

	// ErrInvalidFormat indicates the encoded text is not valid transport
	// format (base64url over msgpack).
	ErrInvalidFormat = errors.New("codec: invalid encoded format")
)

// Encodable is implemented by types that export their fields as a plain map.
type Encodable interface {
	CodecEncode() map[string]any
}

// Decodable is implemented by types that populate themselves from a plain
// field map, ignoring unrecognized keys.
type Decodable interface {
	CodecDecode(map[string]any) error
}

// Marshal serializes a value to its textual form.
func Marshal(v Encodable) (string, error) {
	if v == nil || isNilValue(v) {
		return "", ErrNotEncodable
	}

	packed, err := msgpack.Marshal(v.CodecEncode())
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// Unmarshal decodes a textual form produced by Marshal into v.
//
// The text is decoded into a plain field map first; v then copies the fields
// it recognizes. This is explicit deserialization into a named type - no
// dynamic rebinding of behavior is involved.
func Unmarshal(encoded string, v Decodable) error {
	packed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ErrInvalidFormat
	}

	var fields map[string]any
	if err := msgpack.Unmarshal(packed, &fields); err != nil {
		return ErrInvalidFormat
	}

	return v.CodecDecode(fields)
}

// isNilValue catches typed nils hiding behind the Encodable interface, such
// as a nil pointer whose CodecEncode has a pointer receiver.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
