package codec

import (
	"bytes"
	"cmp"
	"maps"
	"reflect"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// Integers use their smallest encoding and struct fields are written in
// declaration order. msgpack itself sorts the keys of map[string]string,
// map[string]bool and map[string]any only; any other map type must be
// registered with RegisterSortedMap for equal values to produce equal bytes.
// The zero value is ready to use.
//
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack[V any] struct{}

var _ Codec[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)

	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// RegisterSortedMap makes every msgpack encoder in the process write
// map[K]V with its keys in ascending order. Decoding is unchanged.
//
// msgpack resolves struct field encoders once per struct type, so call it
// from init, before any value holding a map[K]V is encoded.
func RegisterSortedMap[K cmp.Ordered, V any]() {
	msgpack.Register(map[K]V(nil), encodeSortedMap[K, V], nil)
}

func encodeSortedMap[K cmp.Ordered, V any](e *msgpack.Encoder, v reflect.Value) error {
	if v.IsNil() {
		return e.EncodeNil()
	}
	m := v.Interface().(map[K]V)
	if err := e.EncodeMapLen(len(m)); err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := e.Encode(k); err != nil {
			return err
		}
		if err := e.Encode(m[k]); err != nil {
			return err
		}
	}
	return nil
}
