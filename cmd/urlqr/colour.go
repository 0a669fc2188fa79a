package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
)

type rgba struct {
	R, G, B, A uint8
}

// Colour names accepted by -F and -B.
var rgb = map[string]rgba{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0xff, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"navy":   {0x00, 0x00, 0x80, 0xff},
	"gray":   {0xbe, 0xbe, 0xbe, 0xff},
	"grey":   {0xbe, 0xbe, 0xbe, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
	"purple": {0xa0, 0x20, 0xf0, 0xff},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	}
	return strings.TrimPrefix(c.hex(), "#")
}

// hex returns c as #RRGGBB, or #RRGGBBAA if c is not opaque.
func (c *rgba) hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	if v, ok := rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		*c = v
		return nil
	}
	h := strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(h) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}
