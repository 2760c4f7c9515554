package wire

import (
	"encoding/binary"
	"unicode/utf8"
	"unsafe"
)

// MaxLen is the largest length a u16 prefix can carry. It bounds strings,
// byte slices and sequence element counts.
const MaxLen = 0xFFFF

// lenPrefix is the size of the little-endian length prefix.
const lenPrefix = 2

// PutLen writes a sequence or payload length prefix.
func (w *Writer) PutLen(n int) error {
	if n < 0 || n > MaxLen {
		return ErrLengthExceeded
	}
	return w.PutU16(uint16(n))
}

// PutBytes writes len(p) as a u16 followed by p.
// Length is checked against MaxLen before capacity.
func (w *Writer) PutBytes(p []byte) error {
	if len(p) > MaxLen {
		return ErrLengthExceeded
	}
	if err := w.AssertSpace(lenPrefix + len(p)); err != nil {
		return err
	}
	w.putPrefix(len(p))
	copy(w.buf[w.off:], p)
	w.off += len(p)
	return nil
}

// PutString is PutBytes for text. s must be valid UTF-8.
func (w *Writer) PutString(s string) error {
	if len(s) > MaxLen {
		return ErrLengthExceeded
	}
	if !utf8.ValidString(s) {
		return ErrInvalidRepresentation
	}
	if err := w.AssertSpace(lenPrefix + len(s)); err != nil {
		return err
	}
	w.putPrefix(len(s))
	copy(w.buf[w.off:], s)
	w.off += len(s)
	return nil
}

// putPrefix writes the u16 length prefix. Callers must have asserted space
// for the prefix and the payload.
func (w *Writer) putPrefix(n int) {
	binary.LittleEndian.PutUint16(w.buf[w.off:], uint16(n))
	w.off += lenPrefix
}

// Len reads a u16 length prefix.
func (r *Reader) Len() (int, error) {
	n, err := r.U16()
	return int(n), err
}

// Blob reads a length-prefixed byte slice. The result aliases the source
// buffer. On error nothing is consumed.
func (r *Reader) Blob() ([]byte, error) {
	p, err := r.prefixed()
	if err != nil {
		return nil, err
	}
	r.off += lenPrefix + len(p)
	return p, nil
}

// Str reads a length-prefixed UTF-8 string without copying: the string
// shares memory with the source buffer, which must not be modified while
// the string is in use.
func (r *Reader) Str() (string, error) {
	p, err := r.prefixed()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", ErrInvalidRepresentation
	}
	r.off += lenPrefix + len(p)
	if len(p) == 0 {
		return "", nil
	}
	return unsafe.String(&p[0], len(p)), nil
}

// prefixed returns the payload of the length-prefixed item at the cursor
// without consuming anything.
func (r *Reader) prefixed() ([]byte, error) {
	hdr, err := r.peek(lenPrefix)
	if err != nil {
		return nil, err
	}
	n := int(hdr[0]) | int(hdr[1])<<8
	if err := r.AssertSpace(lenPrefix + n); err != nil {
		return nil, err
	}
	start := r.off + lenPrefix
	return r.buf[start : start+n : start+n], nil
}
