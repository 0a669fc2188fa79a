// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlqr

import (
	"errors"
	"image"

	"github.com/fogleman/gg"
)

var ErrArgs = errors.New("qr: invalid arguments")

// A Surface is a drawing surface.  *gg.Context implements Surface.
type Surface interface {
	SetHexColor(color string)         // set the current colour
	Clear()                           // fill the surface with the current colour
	DrawRectangle(x, y, w, h float64) // add a rectangle to the current path
	Fill()                            // fill the current path and clear it
}

var _ Surface = (*gg.Context)(nil)

// Layout returns the size of a QR pixel in image pixels and the
// offset of the code from the top left corner for a code with n
// pixels on a side centred in an image of the given size, leaving at
// least margin image pixels around it.  Layout returns ErrArgs if
// the code does not fit.
func Layout(n, pixels, margin int) (scale, offset int, err error) {
	if n <= 0 || pixels <= 0 || margin < 0 || pixels <= 2*margin {
		return 0, 0, ErrArgs
	}
	scale = (pixels - 2*margin) / n
	if scale < 1 {
		return 0, 0, ErrArgs
	}
	return scale, (pixels - scale*n) / 2, nil
}

// Render draws the pixel grid modules onto s: the whole surface in
// the light colour, then a square in the dark colour for each dark
// pixel.  The grid is scaled and centred as described under Layout.
func Render(s Surface, modules [][]bool, pixels, margin int, dark, light string) error {
	scale, off, err := Layout(len(modules), pixels, margin)
	if err != nil {
		return err
	}
	s.SetHexColor(light)
	s.Clear()
	s.SetHexColor(dark)
	sc := float64(scale)
	for y, row := range modules {
		for x, v := range row {
			if v {
				s.DrawRectangle(float64(off+x*scale),
					float64(off+y*scale), sc, sc)
			}
		}
	}
	s.Fill()
	return nil
}

// Draw renders c onto s using c's settings.
func (c *Code) Draw(s Surface) error {
	return Render(s, c.Modules, c.Pixels, c.Margin, c.Dark, c.Light)
}

// context returns a gg drawing context with c rendered on it.
func (c *Code) context() (*gg.Context, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	dc := gg.NewContext(c.Pixels, c.Pixels)
	if err := c.Draw(dc); err != nil {
		return nil, err
	}
	return dc, nil
}

// Image returns an image displaying the code.
func (c *Code) Image() (image.Image, error) {
	dc, err := c.context()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}
