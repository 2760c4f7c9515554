package wire

import (
	"encoding/binary"
	"unicode/utf8"
)

// Fixed-width integers are little-endian with no tag. 128-bit values are
// written as two 64-bit halves, low half first.

func (w *Writer) PutU8(v uint8) error {
	b, err := w.next(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (w *Writer) PutU16(v uint16) error {
	b, err := w.next(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

func (w *Writer) PutU32(v uint32) error {
	b, err := w.next(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func (w *Writer) PutU64(v uint64) error {
	b, err := w.next(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

func (w *Writer) PutU128(hi, lo uint64) error {
	b, err := w.next(16)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	return nil
}

// PutBool writes 1 for true and 0 for false.
func (w *Writer) PutBool(v bool) error {
	if v {
		return w.PutU8(1)
	}
	return w.PutU8(0)
}

// PutRune writes the canonical UTF-8 form of r. Surrogates and values past
// utf8.MaxRune are not scalar values and are rejected.
func (w *Writer) PutRune(r rune) error {
	n := utf8.RuneLen(r)
	if n < 0 {
		return ErrInvalidRepresentation
	}
	b, err := w.next(n)
	if err != nil {
		return err
	}
	utf8.EncodeRune(b, r)
	return nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) U128() (hi, lo uint64, err error) {
	b, err := r.next(16)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(b[8:]), binary.LittleEndian.Uint64(b[:8]), nil
}

// Bool accepts only 0 and 1. The byte is not consumed when it is invalid.
func (r *Reader) Bool() (bool, error) {
	b, err := r.peek(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		r.off++
		return false, nil
	case 1:
		r.off++
		return true, nil
	}
	return false, ErrInvalidRepresentation
}

// Rune decodes one UTF-8 encoded scalar. A sequence cut short by the end of
// the buffer is ErrOutOfSpace; any other malformed input is
// ErrInvalidRepresentation.
func (r *Reader) Rune() (rune, error) {
	rest := r.buf[r.off:]
	if len(rest) == 0 || !utf8.FullRune(rest) {
		return 0, ErrOutOfSpace
	}
	c, size := utf8.DecodeRune(rest)
	if c == utf8.RuneError && size == 1 {
		return 0, ErrInvalidRepresentation
	}
	r.off += size
	return c, nil
}
