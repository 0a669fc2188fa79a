// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlqr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  The image has the same geometry as the PNG
// image.  EncodePBM disregards c.Dark and c.Light, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	scale, off, _ := Layout(c.Size, c.Pixels, c.Margin)
	b := bufio.NewWriter(w)
	length := c.Pixels
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	blank := make([]byte, (length+7)/8)
	row := make([]byte, len(blank))
	for i := 0; i < off; i++ {
		if _, err := b.Write(blank); err != nil {
			return err
		}
	}
	for y := 0; y < c.Size; y++ {
		pbmRow(row, c.Modules[y], scale, off)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	for i := off + scale*c.Size; i < length; i++ {
		if _, err := b.Write(blank); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow encodes a row of QR pixels in PBM format, 1 being black,
// starting off image pixels into row.
func pbmRow(row []byte, srow []bool, scale, off int) {
	clear(row)
	x := off
	for _, v := range srow {
		if !v {
			x += scale
			continue
		}
		for end := x + scale; x < end; x++ {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}
