package wire

// Writer is a bounds-checked write cursor over a caller-owned buffer.
// Every write checks the remaining space first and advances the offset only
// when it succeeds. The zero value has no space.
type Writer struct {
	buf []byte
	off int
}

func NewWriter(buf []byte) Writer { return Writer{buf: buf} }

// Reset rewinds the cursor onto buf.
func (w *Writer) Reset(buf []byte) {
	w.buf = buf
	w.off = 0
}

func (w *Writer) Offset() int    { return w.off }
func (w *Writer) Remaining() int { return len(w.buf) - w.off }

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte { return w.buf[:w.off] }

// AssertSpace fails with ErrOutOfSpace when fewer than n bytes remain.
func (w *Writer) AssertSpace(n int) error {
	if n < 0 || n > len(w.buf)-w.off { // overflow-safe bound check
		return ErrOutOfSpace
	}
	return nil
}

// Advance moves the offset by n. Callers must have checked the space.
func (w *Writer) Advance(n int) { w.off += n }

// next reserves n bytes and returns them for writing.
func (w *Writer) next(n int) ([]byte, error) {
	if err := w.AssertSpace(n); err != nil {
		return nil, err
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b, nil
}

// Reader is a bounds-checked read cursor over an immutable buffer. Slices it
// hands out are views into that buffer.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) Reader { return Reader{buf: buf} }

// Reset rewinds the cursor onto buf.
func (r *Reader) Reset(buf []byte) {
	r.buf = buf
	r.off = 0
}

func (r *Reader) Offset() int    { return r.off }
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Bytes returns the unread suffix of the buffer.
func (r *Reader) Bytes() []byte { return r.buf[r.off:] }

// AssertSpace fails with ErrOutOfSpace when fewer than n bytes remain.
func (r *Reader) AssertSpace(n int) error {
	if n < 0 || n > len(r.buf)-r.off {
		return ErrOutOfSpace
	}
	return nil
}

// Advance moves the offset by n. Callers must have checked the space.
func (r *Reader) Advance(n int) { r.off += n }

// peek returns the next n bytes without consuming them.
func (r *Reader) peek(n int) ([]byte, error) {
	if err := r.AssertSpace(n); err != nil {
		return nil, err
	}
	return r.buf[r.off : r.off+n], nil
}

func (r *Reader) next(n int) ([]byte, error) {
	b, err := r.peek(n)
	if err != nil {
		return nil, err
	}
	r.off += n
	return b, nil
}
