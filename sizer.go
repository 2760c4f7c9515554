package nanowire

import (
	"unicode/utf8"

	"github.com/unkn0wn-root/nanowire/internal/wire"
)

const lenPrefix = 2

// Sizer is a Serializer that counts bytes instead of writing them. It
// applies the same validation as Encoder, so a value Sizer accepts fails to
// encode only when the destination is too small.
type Sizer struct {
	n int
}

var _ Serializer = (*Sizer)(nil)

// Len is the byte count accumulated so far.
func (z *Sizer) Len() int { return z.n }

// Reset zeroes the count.
func (z *Sizer) Reset() { z.n = 0 }

func (z *Sizer) add(n int) error {
	z.n += n
	return nil
}

func (z *Sizer) EncodeBool(bool) error    { return z.add(1) }
func (z *Sizer) EncodeU8(uint8) error     { return z.add(1) }
func (z *Sizer) EncodeU16(uint16) error   { return z.add(2) }
func (z *Sizer) EncodeU32(uint32) error   { return z.add(4) }
func (z *Sizer) EncodeU64(uint64) error   { return z.add(8) }
func (z *Sizer) EncodeU128(Uint128) error { return z.add(16) }
func (z *Sizer) EncodeI8(int8) error      { return z.add(1) }
func (z *Sizer) EncodeI16(int16) error    { return z.add(2) }
func (z *Sizer) EncodeI32(int32) error    { return z.add(4) }
func (z *Sizer) EncodeI64(int64) error    { return z.add(8) }
func (z *Sizer) EncodeI128(Int128) error  { return z.add(16) }
func (z *Sizer) EncodeF32(float32) error  { return ErrNotSupported }
func (z *Sizer) EncodeF64(float64) error  { return ErrNotSupported }
func (z *Sizer) EncodeUnit() error        { return nil }
func (z *Sizer) EncodeNone() error        { return z.add(1) }
func (z *Sizer) EncodeSomeTag() error     { return z.add(1) }
func (z *Sizer) EncodeMap(int) error      { return ErrNotSupported }
func (z *Sizer) EncodeAny(any) error      { return ErrNotSupported }

func (z *Sizer) EncodeChar(v rune) error {
	n := utf8.RuneLen(v)
	if n < 0 {
		return ErrInvalidRepresentation
	}
	return z.add(n)
}

func (z *Sizer) EncodeStr(v string) error {
	if len(v) > wire.MaxLen {
		return ErrLengthExceeded
	}
	if !utf8.ValidString(v) {
		return ErrInvalidRepresentation
	}
	return z.add(lenPrefix + len(v))
}

func (z *Sizer) EncodeBytes(v []byte) error {
	if len(v) > wire.MaxLen {
		return ErrLengthExceeded
	}
	return z.add(lenPrefix + len(v))
}

func (z *Sizer) EncodeSeqLen(n int) error {
	if n < 0 || n > wire.MaxLen {
		return ErrLengthExceeded
	}
	return z.add(lenPrefix)
}

func (z *Sizer) EncodeVariantIndex(index uint32) error {
	if index >= MaxVariants {
		return ErrTooManyVariants
	}
	return z.add(1)
}

func (z *Sizer) EncodeSome(fn func(s Serializer) error) error {
	z.n++
	if fn == nil {
		return nil
	}
	return fn(z)
}

func (z *Sizer) EncodeTuple(n int, fn func(s Serializer, i int) error) error {
	for i := 0; i < n; i++ {
		if err := fn(z, i); err != nil {
			return err
		}
	}
	return nil
}

func (z *Sizer) EncodeSeq(n int, fn func(s Serializer, i int) error) error {
	if err := z.EncodeSeqLen(n); err != nil {
		return err
	}
	return z.EncodeTuple(n, fn)
}

func (z *Sizer) EncodeVariant(index uint32, fn func(s Serializer) error) error {
	if err := z.EncodeVariantIndex(index); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(z)
}
