package wire

import (
	"bytes"
	"errors"
)

const frameVersion byte = 1

// FrameHeader is magic(4) | ver(1) | vlen(u32 le).
const FrameHeader = 4 + 1 + 4

var (
	ErrCorruptFrame = errors.New("nanowire: corrupt frame")
	frameMagic      = [...]byte{'N', 'W', 'S', '1'}
)

// EncodeFrame wraps payload as magic(4) | ver(1) | vlen(u32 le) | payload.
func EncodeFrame(payload []byte) ([]byte, error) {
	if uint64(len(payload)) > 0xFFFFFFFF {
		return nil, ErrLengthExceeded
	}
	out := make([]byte, FrameHeader+len(payload))
	w := NewWriter(out)
	copy(out, frameMagic[:])
	w.Advance(len(frameMagic))
	if err := w.PutU8(frameVersion); err != nil {
		return nil, err
	}
	if err := w.PutU32(uint32(len(payload))); err != nil {
		return nil, err
	}
	copy(out[w.Offset():], payload)
	return out, nil
}

// DecodeFrame validates the header and returns the payload as a subslice of
// b. Short input, a bad header and trailing bytes are all ErrCorruptFrame.
func DecodeFrame(b []byte) ([]byte, error) {
	r := NewReader(b)
	magic, err := r.next(len(frameMagic))
	if err != nil || !bytes.Equal(magic, frameMagic[:]) {
		return nil, ErrCorruptFrame
	}
	if ver, err := r.U8(); err != nil || ver != frameVersion {
		return nil, ErrCorruptFrame
	}
	vlen, err := r.U32()
	if err != nil {
		return nil, ErrCorruptFrame
	}
	if uint64(vlen) != uint64(r.Remaining()) {
		return nil, ErrCorruptFrame
	}
	return r.Bytes(), nil
}
