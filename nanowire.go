package nanowire

import (
	"slices"
	"sync"

	"github.com/unkn0wn-root/nanowire/internal/wire"
)

// MaxLen is the largest string, byte slice or sequence length the format
// can carry.
const MaxLen = wire.MaxLen

// MaxVariants is the number of alternatives a sum type may have.
const MaxVariants = 256

// Marshaler is implemented by types that describe themselves to a Serializer,
// one call per field or element, in declaration order. Generated code or a
// hand-written method implements it.
type Marshaler interface {
	MarshalNano(s Serializer) error
}

// Unmarshaler is the decoding counterpart of Marshaler. Implementations must
// request fields in the same order MarshalNano wrote them.
type Unmarshaler interface {
	UnmarshalNano(d Deserializer) error
}

// Serializer receives one call per value shape. Compound shapes have two
// forms: a header call (EncodeSomeTag, EncodeSeqLen, EncodeVariantIndex)
// after which the nested values are written with ordinary calls, and a
// callback form that is handed the Serializer back. Only the header form is
// free of allocation. Implementations must not retain the Serializer after
// MarshalNano returns. Encoder and Sizer implement it.
type Serializer interface {
	EncodeBool(v bool) error
	EncodeU8(v uint8) error
	EncodeU16(v uint16) error
	EncodeU32(v uint32) error
	EncodeU64(v uint64) error
	EncodeU128(v Uint128) error
	EncodeI8(v int8) error
	EncodeI16(v int16) error
	EncodeI32(v int32) error
	EncodeI64(v int64) error
	EncodeI128(v Int128) error
	EncodeF32(v float32) error
	EncodeF64(v float64) error
	EncodeChar(v rune) error
	EncodeStr(v string) error
	EncodeBytes(v []byte) error
	EncodeUnit() error

	// EncodeNone writes an absent optional value.
	EncodeNone() error
	// EncodeSomeTag writes the tag of a present optional value. The payload
	// follows.
	EncodeSomeTag() error
	// EncodeSeqLen writes a sequence element count. Exactly n elements
	// follow.
	EncodeSeqLen(n int) error
	// EncodeVariantIndex writes the alternative index. The payload, if any,
	// follows.
	EncodeVariantIndex(index uint32) error

	// EncodeSome writes a present optional value; fn writes the payload.
	EncodeSome(fn func(s Serializer) error) error
	// EncodeTuple writes n fields positionally with no tag or length.
	EncodeTuple(n int, fn func(s Serializer, i int) error) error
	// EncodeSeq writes the element count followed by n elements.
	EncodeSeq(n int, fn func(s Serializer, i int) error) error
	// EncodeVariant writes the alternative index followed by its payload.
	// fn is nil for alternatives without one.
	EncodeVariant(index uint32, fn func(s Serializer) error) error

	EncodeMap(n int) error
	EncodeAny(v any) error
}

// Deserializer is the mirror of Serializer. Sequences and sum types hand
// back an access object that drives the nested decode.
// Decoder implements it.
type Deserializer interface {
	DecodeBool() (bool, error)
	DecodeU8() (uint8, error)
	DecodeU16() (uint16, error)
	DecodeU32() (uint32, error)
	DecodeU64() (uint64, error)
	DecodeU128() (Uint128, error)
	DecodeI8() (int8, error)
	DecodeI16() (int16, error)
	DecodeI32() (int32, error)
	DecodeI64() (int64, error)
	DecodeI128() (Int128, error)
	DecodeF32() (float32, error)
	DecodeF64() (float64, error)
	DecodeChar() (rune, error)
	// DecodeStr and DecodeBytes return views into the source buffer.
	DecodeStr() (string, error)
	DecodeBytes() ([]byte, error)
	DecodeOwnedStr() (string, error)
	DecodeOwnedBytes() ([]byte, error)
	DecodeUnit() error

	// DecodeOption reads the option tag and reports whether a payload follows.
	DecodeOption() (bool, error)
	// DecodeTuple iterates n positional fields; n is known out-of-band.
	DecodeTuple(n int) SeqAccess
	// DecodeSeq reads the element count and iterates that many elements.
	DecodeSeq() (SeqAccess, error)
	// DecodeVariant reads the alternative index.
	DecodeVariant() (VariantAccess, error)

	DecodeMap() error
	DecodeAny() (any, error)
}

// Engines handed to MarshalNano and UnmarshalNano escape through the
// interface, so the entry points recycle them instead of allocating per call.
var (
	encoders = sync.Pool{New: func() any { return new(Encoder) }}
	decoders = sync.Pool{New: func() any { return new(Decoder) }}
	sizers   = sync.Pool{New: func() any { return new(Sizer) }}
)

// Encode writes v into dst and returns the number of bytes written. On
// failure the contents of dst are unspecified and must be discarded.
func Encode(v Marshaler, dst []byte) (int, error) {
	e := encoders.Get().(*Encoder)
	e.Reset(dst)
	err := e.Encode(v)
	n := e.Offset()
	e.Reset(nil)
	encoders.Put(e)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Decode reads v from src and returns the number of bytes consumed. Bytes
// after the value are ignored. Strings and byte slices in v borrow src.
func Decode(src []byte, v Unmarshaler) (int, error) {
	d := decoders.Get().(*Decoder)
	d.Reset(src)
	err := d.Decode(v)
	n := d.Offset()
	d.Reset(nil)
	decoders.Put(d)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Size returns the exact number of bytes Encode would write for v.
func Size(v Marshaler) (int, error) {
	z := sizers.Get().(*Sizer)
	z.Reset()
	err := v.MarshalNano(z)
	n := z.Len()
	sizers.Put(z)
	if err != nil {
		return 0, normalize(err)
	}
	return n, nil
}

// Append encodes v onto the end of dst, growing it at most once.
func Append(dst []byte, v Marshaler) ([]byte, error) {
	n, err := Size(v)
	if err != nil {
		return dst, err
	}
	out := slices.Grow(dst, n)
	if _, err := Encode(v, out[len(out):len(out)+n]); err != nil {
		return dst, err
	}
	return out[:len(out)+n], nil
}

// EncodeSlice writes items as a sequence.
func EncodeSlice[T Marshaler](s Serializer, items []T) error {
	if err := s.EncodeSeqLen(len(items)); err != nil {
		return err
	}
	for i := range items {
		if err := items[i].MarshalNano(s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSlice decodes a sequence into dst and returns the element count.
// A sequence longer than dst fails with ErrOutOfSpace before any element is
// decoded.
func DecodeSlice[T any, P interface {
	*T
	Unmarshaler
}](d Deserializer, dst []T) (int, error) {
	seq, err := d.DecodeSeq()
	if err != nil {
		return 0, err
	}
	n := seq.Len()
	if n > len(dst) {
		return 0, ErrOutOfSpace
	}
	for i := 0; ; i++ {
		ok, err := seq.NextElement(func(d Deserializer) error {
			return P(&dst[i]).UnmarshalNano(d)
		})
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
	}
}

func normalize(err error) error {
	if err == nil || wire.IsCodecError(err) {
		return err
	}
	return ErrCustom
}
