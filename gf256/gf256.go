// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon error correction codes built on it.
//
// The tables and multiplication come from rsc.io/qr/gf256; this
// package adds checked division and total Generator and Encode
// functions.
package gf256 // import "github.com/unixdj/urlqr/gf256"

import (
	"errors"

	rsgf "rsc.io/qr/gf256"
)

// ErrDivideByZero is returned when dividing by the zero element.
var ErrDivideByZero = errors.New("gf256: division by zero")

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	f *rsgf.Field
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.  NewField panics if poly is
// reducible or α does not generate the field.
func NewField(poly, α int) *Field {
	return &Field{rsgf.NewField(poly, α)}
}

// QR is the field used by QR error correction.
var QR = NewField(0x11d, 2)

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// e is reduced modulo 255.  If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.f.Exp(e % 255)
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return 0
	}
	return f.f.Log(x)
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	return f.f.Mul(x, y)
}

// Div returns x divided by y in the field.
func (f *Field) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	return f.Exp(f.Log(x) + 255 - f.Log(y)), nil
}

// Inv returns the multiplicative inverse of x in the field.
func (f *Field) Inv(x byte) (byte, error) {
	if x == 0 {
		return 0, ErrDivideByZero
	}
	return f.f.Inv(x), nil
}
