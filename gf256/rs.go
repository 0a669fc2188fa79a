// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import rsgf "rsc.io/qr/gf256"

// Generator returns the Reed-Solomon generator polynomial of the
// given degree, the product of (x - α^i) for i in [0, degree).
// Coefficients are listed from the highest power down; the first
// is always 1.  Generator panics if degree is negative.
func (f *Field) Generator(degree int) []byte {
	if degree < 0 {
		panic("gf256: negative generator degree")
	}
	p := []byte{1}
	for i := 0; i < degree; i++ {
		a := f.Exp(i)
		np := make([]byte, len(p)+1)
		np[0] = p[0]
		for j := 1; j < len(p); j++ {
			np[j] = p[j] ^ f.Mul(p[j-1], a)
		}
		np[len(p)] = f.Mul(p[len(p)-1], a)
		p = np
	}
	return p
}

// Encode returns ecCount Reed-Solomon check bytes for data.
// Encode(data, 0) returns an empty slice.
func (f *Field) Encode(data []byte, ecCount int) []byte {
	check := make([]byte, ecCount)
	f.ecc(f.Generator(ecCount), data, check)
	return check
}

// ecc computes the remainder of data·x^len(check) divided by gen and
// writes it to check.
func (f *Field) ecc(gen, data, check []byte) {
	p := make([]byte, len(data)+len(check))
	copy(p, data)
	for i := range data {
		c := p[i]
		if c == 0 {
			continue
		}
		q := p[i:]
		for j, g := range gen {
			q[j] ^= f.Mul(g, c)
		}
	}
	copy(check, p[len(data):])
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
// The generator polynomial is computed once.  An RSEncoder is not
// safe for concurrent use.
type RSEncoder struct {
	c   int
	rs  *rsgf.RSEncoder // c < 255
	f   *Field          // c >= 255
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 0 {
		panic("gf256: negative check byte count")
	}
	if c < 255 {
		return &RSEncoder{c: c, rs: rsgf.NewRSEncoder(f.f, c)}
	}
	return &RSEncoder{c: c, f: f, gen: f.Generator(c)}
}

// Len returns the number of error correction bytes.
func (rs *RSEncoder) Len() int { return rs.c }

// ECC writes to check the error correction bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	if rs.rs != nil {
		rs.rs.ECC(data, check[:rs.c])
		return
	}
	rs.f.ecc(rs.gen, data, check[:rs.c])
}
