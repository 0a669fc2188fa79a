// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes how to construct a QR code
// with a specific version and level.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level

	DataBits int // number of data bits
	Size     int // number of pixels on a side

	Map     [][]bool // pixel map: false is data or checksum, true is other
	Pattern *Code    // finder patterns, separators, timing, dark module
}

// NewPlan returns a Plan for a QR code with the given version and level.
// The Plan is a copy and may be modified.
func NewPlan(version Version, level Level) (*Plan, error) {
	pp, err := makePlan(version, level)
	if err != nil {
		return nil, err
	}
	p := *pp
	m := NewCode(p.Size)
	for y, row := range pp.Map {
		copy(m.Modules[y], row)
	}
	p.Map = m.Modules
	p.Pattern = pp.Pattern.Clone()
	return &p, nil
}

// Pre-allocated Plans.  A Plan is created the first time a
// combination of version and level is used.
var plans [MaxVersion + 1][H + 1]struct {
	once sync.Once
	p    *Plan
}

// makePlan returns plans[version][level].
// If it doesn't exist, it is created.
func makePlan(version Version, level Level) (*Plan, error) {
	if err := version.valid(level); err != nil {
		return nil, err
	}
	p := &plans[version][level]
	p.once.Do(func() { p.p = vplan(version, level) })
	return p.p, nil
}

// reserved reports whether the pixel at (x, y) of a code with siz
// pixels on a side is outside the data area: the finder corners with
// their separators and format strips, and the timing lines.
func reserved(siz, x, y int) bool {
	return x < 9 && y < 9 ||
		x >= siz-8 && y < 9 ||
		x < 9 && y >= siz-8 ||
		x == 6 || y == 6
}

// Reserved reports whether the pixel at (x, y) is outside the data area.
func (p *Plan) Reserved(x, y int) bool {
	return 0 <= x && x < p.Size && 0 <= y && y < p.Size && p.Map[y][x]
}

var finder = [7]byte{
	0b1111111,
	0b1000001,
	0b1011101,
	0b1011101,
	0b1011101,
	0b1000001,
	0b1111111,
}

// fill sets the pixels of c in the w×h rectangle at (x, y) to v,
// clipping the rectangle to c.
func (c *Code) fill(x, y, w, h int, v bool) {
	for yy := max(y, 0); yy < min(y+h, c.Size); yy++ {
		for xx := max(x, 0); xx < min(x+w, c.Size); xx++ {
			c.Modules[yy][xx] = v
		}
	}
}

// vplan creates a Plan for the given version.
func vplan(v Version, l Level) *Plan {
	info := &vtab[v]
	siz := info.size
	p := &Plan{
		Version:  v,
		Level:    l,
		DataBits: v.DataBits(l),
		Size:     siz,
		Map:      NewCode(siz).Modules,
		Pattern:  NewCode(siz),
	}
	for y, row := range p.Map {
		for x := range row {
			row[x] = reserved(siz, x, y)
		}
	}
	pat := p.Pattern

	// Position boxes: top left, top right, bottom left.
	for _, o := range [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
		for y, bits := range finder {
			for x := 0; x < 7; x++ {
				pat.Modules[o[1]+y][o[0]+x] = bits>>(6-x)&1 != 0
			}
		}
	}

	// Separators.  The last one overwrites the bottom edge of the
	// bottom left box.
	for _, r := range [...][4]int{
		{7, 0, 1, 7}, {0, 7, 7, 1},
		{siz - 8, 0, 1, 7}, {siz - 1, 7, 7, 1},
		{7, siz - 8, 1, 7}, {0, siz - 1, 7, 1},
	} {
		pat.fill(r[0], r[1], r[2], r[3], false)
	}

	// Timing markers.
	for i := 8; i < siz-8; i += 2 {
		pat.Modules[6][i] = true
		pat.Modules[i][6] = true
	}

	// One lonely black pixel
	pat.Modules[info.dark[1]][info.dark[0]] = true
	return p
}

// walk calls fn for each data pixel in zigzag scan order: column
// pairs from right to left, skipping the vertical timing strip, rows
// from bottom to top, right column first.
func (p *Plan) walk(fn func(x, y int)) {
	siz := p.Size
	for x := siz - 1; x >= 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for y := siz - 1; y >= 0; y-- {
			for xx := x; xx >= max(x-1, 0); xx-- {
				if !p.Map[y][xx] {
					fn(xx, y)
				}
			}
		}
	}
}

// Serialise writes bits from s to the data pixels of c in zigzag scan
// order.  Pixels left over when s runs out stay white.
func (p *Plan) Serialise(s BitStream, c *Code) {
	p.walk(func(x, y int) {
		c.Modules[y][x] = s.Next() != 0
	})
}

// Code returns an unmasked code with the structural pattern and the
// data from s.
func (p *Plan) Code(s BitStream) *Code {
	c := p.Pattern.Clone()
	p.Serialise(s, c)
	return c
}

// Mask applies mask pattern 0, inverting data pixels where x+y is
// even.  Applying Mask twice restores c.
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀
func (p *Plan) Mask(c *Code) {
	for y, row := range c.Modules {
		for x := range row {
			if !p.Map[y][x] && (x+y)&1 == 0 {
				row[x] = !row[x]
			}
		}
	}
}

// DataPixels returns the number of data pixels.
func (p *Plan) DataPixels() int {
	n := 0
	p.walk(func(int, int) { n++ })
	return n
}
