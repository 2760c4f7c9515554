package codec

import "github.com/unkn0wn-root/nanowire"

// Dense is a Codec for types whose pointer implements nanowire.Marshaler
// and nanowire.Unmarshaler. Encode sizes the value first and allocates the
// payload exactly once. The zero value is ready to use.
//
// Strings and byte slices in a decoded V borrow the payload passed to
// Decode; the caller must keep it alive and unmodified while V is in use.
type Dense[V any, P interface {
	*V
	nanowire.Marshaler
	nanowire.Unmarshaler
}] struct {
	// RejectTrailing makes Decode fail with ErrTrailingBytes unless the
	// value consumes the whole payload.
	RejectTrailing bool
}

func (c Dense[V, P]) Encode(v V) ([]byte, error) {
	p := P(&v)
	n, err := nanowire.Size(p)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := nanowire.Encode(p, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (c Dense[V, P]) Decode(b []byte) (V, error) {
	var v V
	n, err := nanowire.Decode(b, P(&v))
	if err != nil {
		var zero V
		return zero, err
	}
	if c.RejectTrailing && n != len(b) {
		var zero V
		return zero, ErrTrailingBytes
	}
	return v, nil
}
