package nanowire

import "github.com/unkn0wn-root/nanowire/internal/wire"

// Encoder writes values into a fixed, caller-owned buffer. It holds nothing
// but the buffer and the write offset, so it can be reused with Reset. It is
// not safe for concurrent use.
type Encoder struct {
	w wire.Writer
}

var _ Serializer = (*Encoder)(nil)

func NewEncoder(buf []byte) *Encoder {
	return &Encoder{w: wire.NewWriter(buf)}
}

// Reset points the encoder at buf with a zero offset.
func (e *Encoder) Reset(buf []byte) { e.w.Reset(buf) }

// Offset is the number of bytes written so far.
func (e *Encoder) Offset() int { return e.w.Offset() }

// Bytes returns the written prefix of the buffer.
func (e *Encoder) Bytes() []byte { return e.w.Bytes() }

// Encode writes v at the current offset. Errors that are not part of the
// codec's error set are reported as ErrCustom.
func (e *Encoder) Encode(v Marshaler) error {
	return normalize(v.MarshalNano(e))
}

func (e *Encoder) EncodeBool(v bool) error  { return e.w.PutBool(v) }
func (e *Encoder) EncodeU8(v uint8) error   { return e.w.PutU8(v) }
func (e *Encoder) EncodeU16(v uint16) error { return e.w.PutU16(v) }
func (e *Encoder) EncodeU32(v uint32) error { return e.w.PutU32(v) }
func (e *Encoder) EncodeU64(v uint64) error { return e.w.PutU64(v) }
func (e *Encoder) EncodeI8(v int8) error    { return e.w.PutU8(uint8(v)) }
func (e *Encoder) EncodeI16(v int16) error  { return e.w.PutU16(uint16(v)) }
func (e *Encoder) EncodeI32(v int32) error  { return e.w.PutU32(uint32(v)) }
func (e *Encoder) EncodeI64(v int64) error  { return e.w.PutU64(uint64(v)) }

func (e *Encoder) EncodeU128(v Uint128) error { return e.w.PutU128(v.Hi, v.Lo) }
func (e *Encoder) EncodeI128(v Int128) error  { return e.w.PutU128(uint64(v.Hi), v.Lo) }

// Floating point has no layout in this format.
func (e *Encoder) EncodeF32(float32) error { return ErrNotSupported }
func (e *Encoder) EncodeF64(float64) error { return ErrNotSupported }

func (e *Encoder) EncodeChar(v rune) error    { return e.w.PutRune(v) }
func (e *Encoder) EncodeStr(v string) error   { return e.w.PutString(v) }
func (e *Encoder) EncodeBytes(v []byte) error { return e.w.PutBytes(v) }

// EncodeUnit writes nothing.
func (e *Encoder) EncodeUnit() error { return nil }

func (e *Encoder) EncodeNone() error    { return e.w.PutU8(0) }
func (e *Encoder) EncodeSomeTag() error { return e.w.PutU8(1) }

// EncodeSeqLen rejects counts outside [0, MaxLen] with ErrLengthExceeded.
func (e *Encoder) EncodeSeqLen(n int) error { return e.w.PutLen(n) }

func (e *Encoder) EncodeVariantIndex(index uint32) error {
	if index >= MaxVariants {
		return ErrTooManyVariants
	}
	return e.w.PutU8(uint8(index))
}

func (e *Encoder) EncodeSome(fn func(s Serializer) error) error {
	if err := e.EncodeSomeTag(); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(e)
}

func (e *Encoder) EncodeTuple(n int, fn func(s Serializer, i int) error) error {
	for i := 0; i < n; i++ {
		if err := fn(e, i); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) EncodeSeq(n int, fn func(s Serializer, i int) error) error {
	if err := e.EncodeSeqLen(n); err != nil {
		return err
	}
	return e.EncodeTuple(n, fn)
}

func (e *Encoder) EncodeVariant(index uint32, fn func(s Serializer) error) error {
	if err := e.EncodeVariantIndex(index); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(e)
}

// Maps and shape-erased values cannot be represented without type tags.
func (e *Encoder) EncodeMap(int) error { return ErrNotSupported }
func (e *Encoder) EncodeAny(any) error { return ErrNotSupported }
