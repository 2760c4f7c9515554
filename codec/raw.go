package codec

import (
	"bytes"
	"unicode/utf8"

	"github.com/unkn0wn-root/nanowire"
)

// Bytes is an identity codec for []byte values. Decode returns a copy, so
// the result stays valid after the provider reuses its buffer.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return bytes.Clone(b), nil }

// String is a codec for Go string values. Both directions reject invalid
// UTF-8 with nanowire.ErrInvalidRepresentation.
type String struct{}

func (String) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, nanowire.ErrInvalidRepresentation
	}
	return []byte(s), nil
}

func (String) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", nanowire.ErrInvalidRepresentation
	}
	return string(b), nil
}
