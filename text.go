// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlqr

import "strings"

// String returns the code drawn with Unicode block elements, two QR
// pixels per character, surrounded by c.Border pixels of quiet zone.
// Light pixels are drawn, so the code scans on a dark terminal.
func (c *Code) String() string {
	bord := max(c.Border, 0)
	var b strings.Builder
	b.Grow((c.Size + 2*bord + 1) * (c.Size/2 + bord + 1) * 3)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if c.Black(x, y+1) || y+1 == c.Size+bord {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code drawn with "##" for each dark pixel and two
// spaces for each light one, surrounded by c.Border pixels of quiet
// zone.
func (c *Code) ASCII() string {
	bord := max(c.Border, 0)
	pix := c.Size + 2*bord
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			if c.Black(x, y) {
				b = append(b, "##"...)
			} else {
				b = append(b, "  "...)
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
