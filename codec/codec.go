// Package codec turns values into the byte payloads a store persists.
//
// Dense is the native nanowire codec. CBOR, Msgpack and Protobuf are
// self-describing alternatives for values that do not implement the
// nanowire visitor methods; all of them produce deterministic output.
package codec

import "errors"

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	// ErrTrailingBytes is returned by a Dense codec with RejectTrailing set
	// when the payload holds bytes past the decoded value.
	ErrTrailingBytes = errors.New("codec: trailing bytes after value")
	// ErrPayloadTooLarge is returned by Limit when a payload exceeds its ceiling.
	ErrPayloadTooLarge = errors.New("codec: payload too large")
)
