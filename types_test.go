package nanowire

import "errors"

// Hand-written implementations standing in for generated traversal code.

type byteVal uint8

func (v byteVal) MarshalNano(s Serializer) error { return s.EncodeU8(uint8(v)) }
func (v *byteVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeU8()
	*v = byteVal(x)
	return err
}

type u16 uint16

func (v u16) MarshalNano(s Serializer) error { return s.EncodeU16(uint16(v)) }
func (v *u16) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeU16()
	*v = u16(x)
	return err
}

// pair is {a: u8, b: u16}.
type pair struct {
	A uint8
	B uint16
}

func (p *pair) MarshalNano(s Serializer) error {
	if err := s.EncodeU8(p.A); err != nil {
		return err
	}
	return s.EncodeU16(p.B)
}

func (p *pair) UnmarshalNano(d Deserializer) error {
	seq := d.DecodeTuple(2)
	for {
		i := 2 - seq.Len()
		ok, err := seq.NextElement(func(d Deserializer) error {
			var err error
			if i == 0 {
				p.A, err = d.DecodeU8()
			} else {
				p.B, err = d.DecodeU16()
			}
			return err
		})
		if err != nil || !ok {
			return err
		}
	}
}

type boolVal bool

func (v boolVal) MarshalNano(s Serializer) error { return s.EncodeBool(bool(v)) }
func (v *boolVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeBool()
	*v = boolVal(x)
	return err
}

type charVal rune

func (c charVal) MarshalNano(s Serializer) error { return s.EncodeChar(rune(c)) }
func (c *charVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeChar()
	*c = charVal(x)
	return err
}

type strVal string

func (v strVal) MarshalNano(s Serializer) error { return s.EncodeStr(string(v)) }
func (v *strVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeStr()
	*v = strVal(x)
	return err
}

type bytesVal []byte

func (v bytesVal) MarshalNano(s Serializer) error { return s.EncodeBytes(v) }
func (v *bytesVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeBytes()
	*v = x
	return err
}

// optU32 is an optional u32.
type optU32 struct {
	Valid bool
	V     uint32
}

func (o *optU32) MarshalNano(s Serializer) error {
	if !o.Valid {
		return s.EncodeNone()
	}
	if err := s.EncodeSomeTag(); err != nil {
		return err
	}
	return s.EncodeU32(o.V)
}

func (o *optU32) UnmarshalNano(d Deserializer) error {
	ok, err := d.DecodeOption()
	if err != nil || !ok {
		*o = optU32{}
		return err
	}
	o.Valid = true
	o.V, err = d.DecodeU32()
	return err
}

// bytes8 is a sequence of up to 8 u8 values held without allocation.
type bytes8 struct {
	items [8]byteVal
	n     int
}

func (b *bytes8) MarshalNano(s Serializer) error { return EncodeSlice(s, b.items[:b.n]) }
func (b *bytes8) UnmarshalNano(d Deserializer) error {
	n, err := DecodeSlice[byteVal, *byteVal](d, b.items[:])
	b.n = n
	return err
}

type unitStruct struct{}

func (unitStruct) MarshalNano(s Serializer) error      { return s.EncodeUnit() }
func (*unitStruct) UnmarshalNano(d Deserializer) error { return d.DecodeUnit() }

// variantAt encodes a unit alternative at an arbitrary index.
type variantAt uint32

func (v variantAt) MarshalNano(s Serializer) error { return s.EncodeVariant(uint32(v), nil) }

// seqOf encodes n zero bytes as a sequence.
type seqOf int

func (n seqOf) MarshalNano(s Serializer) error {
	return s.EncodeSeq(int(n), func(s Serializer, _ int) error { return s.EncodeU8(0) })
}

// marshalFunc adapts a function to Marshaler.
type marshalFunc func(s Serializer) error

func (f marshalFunc) MarshalNano(s Serializer) error { return f(s) }

type floatVal float64

func (f floatVal) MarshalNano(s Serializer) error { return s.EncodeF64(float64(f)) }
func (f *floatVal) UnmarshalNano(d Deserializer) error {
	x, err := d.DecodeF64()
	*f = floatVal(x)
	return err
}

var errBoom = errors.New("boom")

type failing struct{}

func (failing) MarshalNano(Serializer) error      { return errBoom }
func (*failing) UnmarshalNano(Deserializer) error { return errBoom }

// inner mirrors { a: ((u32, u16), u64), b: Option<unit newtype> }.
type inner struct {
	X    uint32
	Y    uint16
	Z    uint64
	HasB bool
}

// Tuples carry no header, so nested fields are written back to back.
func (in *inner) MarshalNano(s Serializer) error {
	if err := s.EncodeU32(in.X); err != nil {
		return err
	}
	if err := s.EncodeU16(in.Y); err != nil {
		return err
	}
	if err := s.EncodeU64(in.Z); err != nil {
		return err
	}
	if !in.HasB {
		return s.EncodeNone()
	}
	if err := s.EncodeSomeTag(); err != nil {
		return err
	}
	return s.EncodeUnit()
}

func (in *inner) UnmarshalNano(d Deserializer) error {
	var err error
	if in.X, err = d.DecodeU32(); err != nil {
		return err
	}
	if in.Y, err = d.DecodeU16(); err != nil {
		return err
	}
	if in.Z, err = d.DecodeU64(); err != nil {
		return err
	}
	if in.HasB, err = d.DecodeOption(); err != nil {
		return err
	}
	if in.HasB {
		return d.DecodeUnit()
	}
	return nil
}

// payload is enum { Num(u32), Raw(&[u8]) }.
type payload struct {
	Kind uint8
	Num  uint32
	Raw  []byte
}

func (p *payload) MarshalNano(s Serializer) error {
	if p.Kind > 1 {
		return ErrCustom
	}
	if err := s.EncodeVariantIndex(uint32(p.Kind)); err != nil {
		return err
	}
	if p.Kind == 0 {
		return s.EncodeU32(p.Num)
	}
	return s.EncodeBytes(p.Raw)
}

func (p *payload) UnmarshalNano(d Deserializer) error {
	va, err := d.DecodeVariant()
	if err != nil {
		return err
	}
	p.Kind = va.Index()
	switch p.Kind {
	case 0:
		return va.Newtype(func(d Deserializer) (err error) {
			p.Num, err = d.DecodeU32()
			return err
		})
	case 1:
		return va.Newtype(func(d Deserializer) (err error) {
			p.Raw, err = d.DecodeBytes()
			return err
		})
	}
	return ErrCustom
}

// color is a unit-only enum.
type color uint8

func (c color) MarshalNano(s Serializer) error { return s.EncodeVariantIndex(uint32(c)) }
func (c *color) UnmarshalNano(d Deserializer) error {
	va, err := d.DecodeVariant()
	if err != nil {
		return err
	}
	*c = color(va.Index())
	return va.Unit()
}

// rgb is enum { S { r, g, b } } with a single struct alternative.
type rgb struct{ R, G, B uint8 }

func (c *rgb) MarshalNano(s Serializer) error {
	if err := s.EncodeVariantIndex(0); err != nil {
		return err
	}
	for _, v := range [...]uint8{c.R, c.G, c.B} {
		if err := s.EncodeU8(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *rgb) UnmarshalNano(d Deserializer) error {
	va, err := d.DecodeVariant()
	if err != nil {
		return err
	}
	if va.Index() != 0 {
		return ErrCustom
	}
	fields := [3]*uint8{&c.R, &c.G, &c.B}
	seq := va.Struct(3)
	for i := 0; ; i++ {
		ok, err := seq.NextElement(func(d Deserializer) (err error) {
			*fields[i], err = d.DecodeU8()
			return err
		})
		if err != nil || !ok {
			return err
		}
	}
}

type monster struct {
	A   inner
	B   []byte
	C   [5]uint32
	D   [2]inner
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	U   Uint128
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	I   Int128
	F   payload
	G   [2]bool
	H   rune
	S   string
	J   color
	K   struct {
		A Uint128
		B uint32
		C uint8
	}
	L rgb
	M unitStruct
	N [4]u16
	n int
}

func (m *monster) MarshalNano(s Serializer) error {
	steps := []func() error{
		func() error { return m.A.MarshalNano(s) },
		func() error { return s.EncodeBytes(m.B) },
		func() error {
			for _, v := range m.C {
				if err := s.EncodeU32(v); err != nil {
					return err
				}
			}
			return nil
		},
		func() error {
			for i := range m.D {
				if err := m.D[i].MarshalNano(s); err != nil {
					return err
				}
			}
			return nil
		},
		func() error { return s.EncodeU8(m.U8) },
		func() error { return s.EncodeU16(m.U16) },
		func() error { return s.EncodeU32(m.U32) },
		func() error { return s.EncodeU64(m.U64) },
		func() error { return s.EncodeU128(m.U) },
		func() error { return s.EncodeI8(m.I8) },
		func() error { return s.EncodeI16(m.I16) },
		func() error { return s.EncodeI32(m.I32) },
		func() error { return s.EncodeI64(m.I64) },
		func() error { return s.EncodeI128(m.I) },
		func() error { return m.F.MarshalNano(s) },
		func() error { return s.EncodeBool(m.G[0]) },
		func() error { return s.EncodeBool(m.G[1]) },
		func() error { return s.EncodeChar(m.H) },
		func() error { return s.EncodeStr(m.S) },
		func() error { return m.J.MarshalNano(s) },
		func() error { return s.EncodeU128(m.K.A) },
		func() error { return s.EncodeU32(m.K.B) },
		func() error { return s.EncodeU8(m.K.C) },
		func() error { return m.L.MarshalNano(s) },
		func() error { return m.M.MarshalNano(s) },
		func() error {
			if err := s.EncodeSeqLen(m.n); err != nil {
				return err
			}
			for _, v := range m.N[:m.n] {
				if err := s.EncodeU16(uint16(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (m *monster) UnmarshalNano(d Deserializer) error {
	steps := []func() error{
		func() error { return m.A.UnmarshalNano(d) },
		func() (err error) { m.B, err = d.DecodeBytes(); return err },
		func() error {
			seq := d.DecodeTuple(len(m.C))
			for i := 0; ; i++ {
				ok, err := seq.NextElement(func(d Deserializer) (err error) {
					m.C[i], err = d.DecodeU32()
					return err
				})
				if err != nil || !ok {
					return err
				}
			}
		},
		func() error {
			for i := range m.D {
				if err := m.D[i].UnmarshalNano(d); err != nil {
					return err
				}
			}
			return nil
		},
		func() (err error) { m.U8, err = d.DecodeU8(); return err },
		func() (err error) { m.U16, err = d.DecodeU16(); return err },
		func() (err error) { m.U32, err = d.DecodeU32(); return err },
		func() (err error) { m.U64, err = d.DecodeU64(); return err },
		func() (err error) { m.U, err = d.DecodeU128(); return err },
		func() (err error) { m.I8, err = d.DecodeI8(); return err },
		func() (err error) { m.I16, err = d.DecodeI16(); return err },
		func() (err error) { m.I32, err = d.DecodeI32(); return err },
		func() (err error) { m.I64, err = d.DecodeI64(); return err },
		func() (err error) { m.I, err = d.DecodeI128(); return err },
		func() error { return m.F.UnmarshalNano(d) },
		func() (err error) { m.G[0], err = d.DecodeBool(); return err },
		func() (err error) { m.G[1], err = d.DecodeBool(); return err },
		func() (err error) { m.H, err = d.DecodeChar(); return err },
		func() (err error) { m.S, err = d.DecodeStr(); return err },
		func() error { return m.J.UnmarshalNano(d) },
		func() (err error) { m.K.A, err = d.DecodeU128(); return err },
		func() (err error) { m.K.B, err = d.DecodeU32(); return err },
		func() (err error) { m.K.C, err = d.DecodeU8(); return err },
		func() error { return m.L.UnmarshalNano(d) },
		func() error { return m.M.UnmarshalNano(d) },
		func() (err error) { m.n, err = DecodeSlice[u16, *u16](d, m.N[:]); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
