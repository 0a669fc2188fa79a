package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/unixdj/urlqr"
	"github.com/unixdj/urlqr/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"
)

// Image size and margin limits.
const (
	minPixels = 128
	maxPixels = 1024
)

var g = struct {
	pixels   int    // image size
	margin   int    // image margin
	border   int    // quiet zone for text output
	fn       string // filename
	format   int    // output file format
	bg, fg   rgba   // colour
	rev      bool   // reverse colours
	checksum bool   // place error correction bytes
	latin1   bool   // Latin-1 byte mode
	raw      bool   // no URL normalisation or validation
	debug    bool   // debug logging
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "URL QR code generator\nUsage: ", prog, " ",
		cl.UsageLine(), ` [url ...]
If no URL is given, it is read from standard input and the final
newline is stripped.  A URL without a scheme, like "example.com/x",
gets "https://" prepended; only http and https URLs are accepted
unless -n is given.  Text over 17 characters is truncated.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`urlqr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"png", "svg", "pbm", "utf8", "ascii"}

var encoders = [...]func(*urlqr.Code, io.Writer) error{
	(*urlqr.Code).EncodePNG,
	(*urlqr.Code).EncodeSVG,
	(*urlqr.Code).EncodePBM,
	func(c *urlqr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	func(c *urlqr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.ASCII())
		return err
	},
}

const utf8Format = 3

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits, optionally after "#", or a `+
		`colour name; only for types png and svg`, "RGB[A]|name")
	getopt.Flag(&g.rev, 'r', "reverse colours")
	getopt.Flag(&g.checksum, 'c', "place error correction bytes "+
		"after the data")
	getopt.Flag(&g.latin1, '1', "encode text as Latin-1")
	getopt.Flag(&g.raw, 'n', "encode text as given, without URL checks")
	getopt.Flag(&g.debug, 'd', "debug logging")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	pixels := getopt.Unsigned('s', urlqr.DefaultPixels,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 0},
		fmt.Sprintf("image size in pixels, %d to %d",
			minPixels, maxPixels), "size")
	margin := getopt.Unsigned('m', urlqr.DefaultMargin,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 0},
		`image margin in pixels, up to a third of the size`, "margin")
	border := getopt.Unsigned('b', urlqr.DefaultBorder,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 0},
		`quiet zone in QR pixels for types utf8 and ascii`, "border")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.debug {
		log.SetLevel(log.DebugLevel)
	}
	g.pixels, g.margin = clamp(int(*pixels), int(*margin))
	if g.pixels != int(*pixels) || g.margin != int(*margin) {
		log.WithFields(log.Fields{
			"size": g.pixels, "margin": g.margin,
		}).Warn("image size adjusted")
	}
	g.border = int(*border)
	if g.fn == "-" {
		g.fn = ""
	}
	if *ff == "" {
		if g.fn == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
}

// clamp limits the image size to [minPixels, maxPixels] and the
// margin to [0, size/3].
func clamp(pixels, margin int) (int, int) {
	pixels = min(max(pixels, minPixels), maxPixels)
	margin = min(max(margin, 0), pixels/3)
	return pixels, margin
}

func init() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if !g.raw {
		u, err := normalizeURL(s)
		if err != nil {
			log.Fatal(err)
		}
		s = u
	}

	c, err := encode(s)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(c); err != nil {
		log.Fatal(err)
	}
}

// encode encodes s with the options in g, warning if s is truncated.
func encode(s string) (*urlqr.Code, error) {
	o := &coding.Options{Checksum: g.checksum}
	n := len(utf16.Encode([]rune(s)))
	if g.latin1 {
		o.Encoding = charmap.ISO8859_1
		n = utf8.RuneCountInString(s)
	}
	if limit := coding.V1.MaxLength(coding.L); n > limit {
		log.WithField("length", n).
			Warnf("text truncated to %d characters", limit)
	}
	c, err := urlqr.EncodeOptions(s, o)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"text": s, "checksum": g.checksum, "type": formats[g.format],
	}).Debug("encoded")
	return c, nil
}

// write writes c to g.fn, or to standard output, in format g.format.
func write(c *urlqr.Code) error {
	c.Pixels, c.Margin, c.Border = g.pixels, g.margin, g.border
	c.Dark, c.Light = g.fg.hex(), g.bg.hex()
	if g.rev {
		c.Dark, c.Light = c.Light, c.Dark
	}
	if g.fn == "" {
		if g.format == utf8Format {
			checkWidth(c)
		}
		return encoders[g.format](c, os.Stdout)
	}
	f, err := os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = encoders[g.format](c, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// checkWidth warns if the text rendering is wider than the terminal.
func checkWidth(c *urlqr.Code) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		log.WithError(err).Debug("cannot get terminal size")
		return
	}
	if need := c.Size + 2*c.Border; need > width {
		log.WithFields(log.Fields{"width": width, "need": need}).
			Warn("terminal too narrow for the code")
	}
}
