// Package nanowire implements a dense, tagless binary encoding for
// environments where buffer space is tight. Values are written into and read
// from caller-owned buffers; the engines never allocate and keep no state
// beyond a single offset.
//
// Layout (all integers little-endian, no padding, no header):
//
//	integer of width W     W/8 bytes
//	bool                   1 byte, 0 or 1
//	rune                   UTF-8, 1-4 bytes
//	string, []byte         u16 length + bytes
//	optional               u8 tag (0 absent, 1 present) + payload
//	tuple / struct         fields back to back
//	sequence               u16 count + elements
//	sum type               u8 alternative index + payload
//	unit                   nothing
//
// The format is not self-describing: a type describes itself field by field
// through Marshaler and Unmarshaler, and the decoder must request the same
// shapes in the same order the encoder wrote them.
//
//	func (p *Point) MarshalNano(s nanowire.Serializer) error {
//	    if err := s.EncodeI32(p.X); err != nil {
//	        return err
//	    }
//	    return s.EncodeI32(p.Y)
//	}
//
//	buf := make([]byte, 8)
//	n, err := nanowire.Encode(&p, buf)
//
// Options, sequences and sum types are written with a header call followed
// by their elements:
//
//	if err := s.EncodeSeqLen(len(p.Tags)); err != nil {
//	    return err
//	}
//	for _, t := range p.Tags {
//	    if err := s.EncodeStr(t); err != nil {
//	        return err
//	    }
//	}
//
// EncodeSome, EncodeSeq and EncodeVariant take a callback instead. They are
// shorter to write but the callback escapes to the heap.
//
// Floats, maps and dynamically typed values are rejected with ErrNotSupported.
package nanowire
