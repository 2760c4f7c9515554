package nanowire

import "github.com/unkn0wn-root/nanowire/internal/wire"

// Decoder reads values from an immutable buffer. Strings and byte slices it
// returns are views into that buffer. Like Encoder it keeps only an offset
// and is not safe for concurrent use.
type Decoder struct {
	r wire.Reader
}

var _ Deserializer = (*Decoder)(nil)

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{r: wire.NewReader(buf)}
}

// Reset points the decoder at buf with a zero offset.
func (d *Decoder) Reset(buf []byte) { d.r.Reset(buf) }

// Offset is the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.r.Offset() }

// Remaining is the number of unread bytes.
func (d *Decoder) Remaining() int { return d.r.Remaining() }

// Decode reads v at the current offset. Errors that are not part of the
// codec's error set are reported as ErrCustom.
func (d *Decoder) Decode(v Unmarshaler) error {
	return normalize(v.UnmarshalNano(d))
}

func (d *Decoder) DecodeBool() (bool, error)    { return d.r.Bool() }
func (d *Decoder) DecodeU8() (uint8, error)     { return d.r.U8() }
func (d *Decoder) DecodeU16() (uint16, error)   { return d.r.U16() }
func (d *Decoder) DecodeU32() (uint32, error)   { return d.r.U32() }
func (d *Decoder) DecodeU64() (uint64, error)   { return d.r.U64() }
func (d *Decoder) DecodeChar() (rune, error)    { return d.r.Rune() }
func (d *Decoder) DecodeStr() (string, error)   { return d.r.Str() }
func (d *Decoder) DecodeBytes() ([]byte, error) { return d.r.Blob() }

func (d *Decoder) DecodeI8() (int8, error) {
	v, err := d.r.U8()
	return int8(v), err
}

func (d *Decoder) DecodeI16() (int16, error) {
	v, err := d.r.U16()
	return int16(v), err
}

func (d *Decoder) DecodeI32() (int32, error) {
	v, err := d.r.U32()
	return int32(v), err
}

func (d *Decoder) DecodeI64() (int64, error) {
	v, err := d.r.U64()
	return int64(v), err
}

func (d *Decoder) DecodeU128() (Uint128, error) {
	hi, lo, err := d.r.U128()
	return Uint128{Hi: hi, Lo: lo}, err
}

func (d *Decoder) DecodeI128() (Int128, error) {
	hi, lo, err := d.r.U128()
	return Int128{Hi: int64(hi), Lo: lo}, err
}

func (d *Decoder) DecodeF32() (float32, error) { return 0, ErrNotSupported }
func (d *Decoder) DecodeF64() (float64, error) { return 0, ErrNotSupported }

// Owned copies would need an allocator; only borrowed views are offered.
func (d *Decoder) DecodeOwnedStr() (string, error)   { return "", ErrNotSupported }
func (d *Decoder) DecodeOwnedBytes() ([]byte, error) { return nil, ErrNotSupported }

func (d *Decoder) DecodeUnit() error { return nil }

// DecodeOption accepts the tags 0 and 1 only.
func (d *Decoder) DecodeOption() (bool, error) { return d.r.Bool() }

func (d *Decoder) DecodeTuple(n int) SeqAccess {
	if n < 0 {
		n = 0
	}
	return SeqAccess{d: d, remaining: n}
}

func (d *Decoder) DecodeSeq() (SeqAccess, error) {
	n, err := d.r.Len()
	if err != nil {
		return SeqAccess{}, err
	}
	return SeqAccess{d: d, remaining: n}, nil
}

func (d *Decoder) DecodeVariant() (VariantAccess, error) {
	idx, err := d.r.U8()
	if err != nil {
		return VariantAccess{}, err
	}
	return VariantAccess{d: d, index: idx}, nil
}

func (d *Decoder) DecodeMap() error        { return ErrNotSupported }
func (d *Decoder) DecodeAny() (any, error) { return nil, ErrNotSupported }

// SeqAccess hands out the elements of a sequence or tuple one at a time.
// It starts with the element count and moves forward only; once the count
// reaches zero it is done and NextElement reports false.
type SeqAccess struct {
	d         Deserializer
	remaining int
}

// Len is the number of elements not yet decoded.
func (s *SeqAccess) Len() int { return s.remaining }

// Done reports whether every element has been handed out.
func (s *SeqAccess) Done() bool { return s.remaining == 0 }

// NextElement decodes the next element with fn. It returns false, without
// calling fn, when no elements remain.
func (s *SeqAccess) NextElement(fn func(d Deserializer) error) (bool, error) {
	if s.remaining == 0 {
		return false, nil
	}
	s.remaining--
	if err := fn(s.d); err != nil {
		return false, err
	}
	return true, nil
}

// VariantAccess is a resolved sum type alternative. The caller picks the
// payload decode matching Index.
type VariantAccess struct {
	d     Deserializer
	index uint8
}

func (v VariantAccess) Index() uint8 { return v.index }

// Unit completes an alternative without payload.
func (v VariantAccess) Unit() error { return nil }

// Newtype decodes a single-value payload.
func (v VariantAccess) Newtype(fn func(d Deserializer) error) error { return fn(v.d) }

// Tuple iterates the n fields of a tuple alternative.
func (v VariantAccess) Tuple(n int) SeqAccess {
	if n < 0 {
		n = 0
	}
	return SeqAccess{d: v.d, remaining: n}
}

// Struct iterates the n fields of a struct alternative. Field names are not
// encoded, so it reads exactly like Tuple.
func (v VariantAccess) Struct(n int) SeqAccess { return v.Tuple(n) }
