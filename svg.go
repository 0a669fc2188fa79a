// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlqr

import (
	"bufio"
	"html"
	"io"
	"strconv"
	"strings"
)

// svgSurface records drawing calls as SVG elements.
type svgSurface struct {
	size  int
	color string
	path  []string
	elems []string
}

func (s *svgSurface) SetHexColor(color string) {
	s.color = html.EscapeString(color)
}

func (s *svgSurface) Clear() {
	s.path = nil
	s.elems = append(s.elems, `<rect width="`+strconv.Itoa(s.size)+
		`" height="`+strconv.Itoa(s.size)+`" fill="`+s.color+`"/>`)
}

func (s *svgSurface) DrawRectangle(x, y, w, h float64) {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s.path = append(s.path, "M"+f(x)+" "+f(y)+"h"+f(w)+"v"+f(h)+
		"h"+f(-w)+"z")
}

func (s *svgSurface) Fill() {
	if len(s.path) != 0 {
		s.elems = append(s.elems, `<path fill="`+s.color+`" d="`+
			strings.Join(s.path, "")+`"/>`)
		s.path = nil
	}
}

// EncodeSVG writes an SVG image displaying the code to w.
func (c *Code) EncodeSVG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	s := &svgSurface{size: c.Pixels}
	if err := c.Draw(s); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	n := strconv.Itoa(c.Pixels)
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<svg xmlns="http://www.w3.org/2000/svg" width="` + n +
		`" height="` + n + `" viewBox="0 0 ` + n + ` ` + n +
		`" shape-rendering="crispEdges">` + "\n")
	for _, e := range s.elems {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.Flush()
}
