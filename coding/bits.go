// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/urlqr/gf256"

// Bits is a bit buffer written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version and level.
func NewBits(v Version, l Level) *Bits {
	n := 0
	if v.valid(l) == nil {
		n = vtab[v].bytes
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the bytes written.  It panics unless a whole number
// of bytes has been written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Add adds n bytes to b and returns the added slice.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	start := len(b.b)
	b.b = append(b.b, make([]byte, n)...)
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// Write writes the low nbit bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo pads b with zero bits, or truncates it, to n bits.
func (b *Bits) PadTo(n int) {
	for len(b.b)*8 < n {
		b.b = append(b.b, 0)
	}
	b.b = b.b[:(n+7)>>3]
	if rem := n & 7; rem != 0 {
		b.b[len(b.b)-1] &^= 0xff >> rem
	}
	b.nbit = n
}

// AddCheckBytes appends the error correction bytes for the data
// in b, which must fill the data capacity of the given QR version
// and level.
func (b *Bits) AddCheckBytes(v Version, l Level) {
	if b.nbit != v.DataBits(l) {
		panic("qr: wrong data length")
	}
	dat := b.Bytes()
	rs := gf256.NewRSEncoder(Field, v.CheckBytes(l))
	rs.ECC(dat, b.Add(rs.Len()))
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
