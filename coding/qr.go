// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the version
// table, data serialisation, structural patterns, zigzag placement and
// masking.
package coding // import "github.com/unixdj/urlqr/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/encoding"

	"github.com/unixdj/urlqr/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.QR

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Only version 1 is implemented.
type Version int

const (
	V1 Version = 1

	MinVersion = V1 // Minimum QR version
	MaxVersion = V1 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// A version describes metadata associated with a version.
type version struct {
	size  int    // pixels on a side
	bytes int    // total codewords
	check [4]int // check bytes per level, 0 if unsupported
	dark  [2]int // x, y of the dark module
}

var vtab = [MaxVersion + 1]version{
	1: {size: 21, bytes: 26, check: [4]int{L: 7}, dark: [2]int{4, 8}},
}

func (v Version) valid(l Level) error {
	if v < MinVersion || v > MaxVersion {
		return ErrVersion
	}
	if l < L || l > H || vtab[v].check[l] == 0 {
		return ErrLevel
	}
	return nil
}

// Size returns the number of pixels on a side of a code with version v.
func (v Version) Size() int {
	if v < MinVersion || v > MaxVersion {
		return 0
	}
	return vtab[v].size
}

// dataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) dataBytes(l Level) int {
	vt := &vtab[v]
	return vt.bytes - vt.check[l]
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	if v.valid(l) != nil {
		return 0
	}
	return v.dataBytes(l) * 8
}

// CheckBytes returns the number of error correction bytes
// of a QR code with the given version and level.
func (v Version) CheckBytes(l Level) int {
	if v.valid(l) != nil {
		return 0
	}
	return vtab[v].check[l]
}

// Byte mode segment header.
const (
	byteIndicator = 4 // mode indicator 0100
	indicatorLen  = 4 // bits in mode indicator
	countLen      = 8 // bits in character count for versions 1 to 9
)

// MaxLength returns the maximum number of payload bytes a QR code
// with the given version and level holds.  Longer text is truncated.
func (v Version) MaxLength(l Level) int {
	n := (v.DataBits(l) - indicatorLen - countLen) / 8
	return max(0, min(n, 1<<countLen-1))
}

// A Code is a square pixel grid.
type Code struct {
	Size    int      // number of pixels on a side
	Modules [][]bool // Modules[y][x]; true is black
}

// NewCode returns an all-white Code with siz pixels on a side.
func NewCode(siz int) *Code {
	c := &Code{Size: siz, Modules: make([][]bool, siz)}
	buf := make([]bool, siz*siz)
	for y := range c.Modules {
		c.Modules[y], buf = buf[:siz:siz], buf[siz:]
	}
	return c
}

// Black reports whether the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Modules[y][x]
}

// Clone returns a deep copy of c.
func (c *Code) Clone() *Code {
	cc := NewCode(c.Size)
	for y, row := range c.Modules {
		copy(cc.Modules[y], row)
	}
	return cc
}

// Equal reports whether c and d have the same pixels.
func (c *Code) Equal(d *Code) bool {
	if c.Size != d.Size {
		return false
	}
	for y, row := range c.Modules {
		for x, v := range row {
			if d.Modules[y][x] != v {
				return false
			}
		}
	}
	return true
}

// A TextError is returned when text cannot be converted by
// Options.Encoding.
type TextError struct {
	Text string
	Err  error
}

func (e *TextError) Error() string {
	return fmt.Sprintf("qr: cannot encode %q: %v", e.Text, e.Err)
}

func (e *TextError) Unwrap() error { return e.Err }

// Options control an Encoder.
type Options struct {
	// Checksum places error correction bytes after the data bytes.
	// Otherwise only the data bytes are placed and the remaining
	// data pixels are left white.
	Checksum bool

	// Encoding, if set, converts text to bytes for byte mode.
	// Otherwise each UTF-16 code unit contributes its low 8 bits.
	Encoding encoding.Encoding
}

// Encoder encodes a QR code.
type Encoder struct {
	p   *Plan
	b   *Bits
	opt Options
}

// NewEncoder returns an Encoder for the given version and level.
// opt may be nil.
func NewEncoder(version Version, level Level, opt *Options) (*Encoder, error) {
	p, err := makePlan(version, level)
	if err != nil {
		return nil, err
	}
	e := &Encoder{p: p, b: NewBits(version, level)}
	if opt != nil {
		e.opt = *opt
	}
	return e, nil
}

// Plan returns the Plan used by e.
func (e *Encoder) Plan() *Plan { return e.p }

// payload returns the bytes encoded for text.
func (e *Encoder) payload(text string) ([]byte, error) {
	if enc := e.opt.Encoding; enc != nil {
		s, err := enc.NewEncoder().String(text)
		if err != nil {
			return nil, &TextError{text, err}
		}
		return []byte(s), nil
	}
	u := utf16.Encode([]rune(text))
	b := make([]byte, len(u))
	for i, v := range u {
		b[i] = byte(v)
	}
	return b, nil
}

// Data returns the data codewords for text: a byte mode segment
// padded with zeros to the data capacity.  Payload over MaxLength
// bytes is dropped.  The returned slice is valid until the next call
// to Data or Encode.
func (e *Encoder) Data(text string) ([]byte, error) {
	data, err := e.payload(text)
	if err != nil {
		return nil, err
	}
	v, l := e.p.Version, e.p.Level
	data = data[:min(len(data), v.MaxLength(l))]
	b := e.b
	b.Reset()
	b.Write(byteIndicator, indicatorLen)
	b.Write(uint32(len(data)), countLen)
	for _, c := range data {
		b.Write(uint32(c), 8)
	}
	b.PadTo(e.p.DataBits)
	return b.Bytes(), nil
}

// Encode returns a QR code containing text.
func (e *Encoder) Encode(text string) (*Code, error) {
	if _, err := e.Data(text); err != nil {
		return nil, err
	}
	if e.opt.Checksum {
		e.b.AddCheckBytes(e.p.Version, e.p.Level)
	}
	c := e.p.Code(NewBitStream(e.b.Bytes()))
	e.p.Mask(c)
	return c, nil
}

// Encode encodes text using an Encoder with the given version, level
// and options.
func Encode(version Version, level Level, text string, opt *Options) (*Code, error) {
	e, err := NewEncoder(version, level, opt)
	if err != nil {
		return nil, err
	}
	return e.Encode(text)
}
