// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package urlqr encodes short text, typically a URL, as a version 1
QR code and renders it.

The code is a 21×21 grid built with byte mode, error correction level
L and mask pattern 0.  By default only the data bytes are placed in the
grid; set coding.Options.Checksum to place the error correction bytes
after them.  Format information is not written.
*/
package urlqr // import "github.com/unixdj/urlqr"

import (
	"github.com/unixdj/urlqr/coding"
)

// Rendering defaults.
const (
	DefaultPixels = 256       // image width and height
	DefaultMargin = 20        // minimum margin in image pixels
	DefaultBorder = 4         // quiet zone in pixels for text output
	DefaultDark   = "#000000" // dark module colour
	DefaultLight  = "#FFFFFF" // light module and background colour
)

// A Code is a square pixel grid with rendering settings.
// It implements PNG, SVG, PBM and text encoding.
type Code struct {
	Modules [][]bool // Modules[y][x]; true is dark
	Size    int      // number of pixels on a side

	Pixels int    // image width and height in image pixels
	Margin int    // minimum margin in image pixels
	Border int    // quiet zone in QR pixels for String and ASCII
	Dark   string // dark colour as #RGB or #RRGGBB
	Light  string // light colour as #RGB or #RRGGBB
}

// Encode returns an encoding of text with default rendering settings.
// Text over the capacity of the code is truncated.
func Encode(text string) (*Code, error) {
	return EncodeOptions(text, nil)
}

// EncodeOptions is like Encode with encoder options.  opt may be nil.
func EncodeOptions(text string, opt *coding.Options) (*Code, error) {
	cc, err := coding.Encode(coding.V1, coding.L, text, opt)
	if err != nil {
		return nil, err
	}
	return NewCode(cc), nil
}

// NewCode returns a Code displaying cc with default rendering
// settings.  The pixel grid is shared with cc.
func NewCode(cc *coding.Code) *Code {
	return &Code{
		Modules: cc.Modules,
		Size:    cc.Size,
		Pixels:  DefaultPixels,
		Margin:  DefaultMargin,
		Border:  DefaultBorder,
		Dark:    DefaultDark,
		Light:   DefaultLight,
	}
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Modules[y][x]
}

// isValid reports whether c can be rendered as an image.
func (c *Code) isValid() bool {
	_, _, err := Layout(c.Size, c.Pixels, c.Margin)
	return err == nil && len(c.Modules) == c.Size
}
