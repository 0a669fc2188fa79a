package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNormalizeURL(t *testing.T) {
	for _, tt := range []struct {
		in, out string
		ok      bool
	}{
		{"https://example.com/", "https://example.com/", true},
		{"HTTP://Example.com", "HTTP://Example.com", true},
		{"  example.com\n", "https://example.com", true},
		{"go.dev/doc", "https://go.dev/doc", true},
		{"sub.Example.ORG/a?b=c", "https://sub.Example.ORG/a?b=c", true},
		{"", "", false},
		{"   ", "", false},
		{"localhost", "", false},
		{"ftp://example.com/", "", false},
		{"mailto:a@example.com", "", false},
		{"https://", "", false},
		{"example.c", "", false},
		{"javascript:alert(1)", "", false},
	} {
		out, err := normalizeURL(tt.in)
		if (err == nil) != tt.ok || out != tt.out {
			t.Errorf("normalizeURL(%q) = %q, %v", tt.in, out, err)
		}
	}
}

func TestClamp(t *testing.T) {
	for _, tt := range []struct{ pixels, margin, wp, wm int }{
		{256, 20, 256, 20},
		{64, 20, 128, 20},
		{4096, 0, 1024, 0},
		{128, 100, 128, 42},
		{300, -5, 300, 0},
		{1024, 341, 1024, 341},
		{1024, 342, 1024, 341},
	} {
		p, m := clamp(tt.pixels, tt.margin)
		if p != tt.wp || m != tt.wm {
			t.Errorf("clamp(%d, %d) = %d, %d; want %d, %d",
				tt.pixels, tt.margin, p, m, tt.wp, tt.wm)
		}
	}
}

func TestColour(t *testing.T) {
	for _, tt := range []struct {
		in  string
		out rgba
		hex string
	}{
		{"black", rgba{0, 0, 0, 0xff}, "#000000"},
		{"White", rgba{0xff, 0xff, 0xff, 0xff}, "#ffffff"},
		{"#fc0", rgba{0xff, 0xcc, 0x00, 0xff}, "#ffcc00"},
		{"fc08", rgba{0xff, 0xcc, 0x00, 0x88}, "#ffcc0088"},
		{"#336699", rgba{0x33, 0x66, 0x99, 0xff}, "#336699"},
		{"33669980", rgba{0x33, 0x66, 0x99, 0x80}, "#33669980"},
	} {
		var c rgba
		if err := c.Set(tt.in, nil); err != nil {
			t.Errorf("Set(%q): %v", tt.in, err)
			continue
		}
		if c != tt.out || c.hex() != tt.hex {
			t.Errorf("Set(%q) = %v, %s; want %v, %s",
				tt.in, c, c.hex(), tt.out, tt.hex)
		}
	}
	for _, s := range []string{"", "#", "ff", "#12345", "#1234567", "xyz", "#-12", "123456789"} {
		c := rgba{1, 2, 3, 4}
		if err := c.Set(s, nil); err == nil {
			t.Errorf("Set(%q) = %v, want error", s, c)
		}
	}
}

func TestColourString(t *testing.T) {
	for _, tt := range []struct {
		c    rgba
		want string
	}{
		{rgba{0, 0, 0, 0xff}, "black"},
		{rgba{0xff, 0xff, 0xff, 0xff}, "white"},
		{rgba{0x12, 0x34, 0x56, 0xff}, "123456"},
		{rgba{0x12, 0x34, 0x56, 0x78}, "12345678"},
	} {
		if s := tt.c.String(); s != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.c, s, tt.want)
		}
	}
}

// setGlobals sets g for a test and restores it afterwards.
func setGlobals(t *testing.T) {
	t.Helper()
	saved := g
	t.Cleanup(func() { g = saved })
	g.pixels, g.margin, g.border = 256, 20, 4
}

func TestEncodeTruncation(t *testing.T) {
	setGlobals(t)
	hook := test.NewGlobal()
	defer hook.Reset()

	if _, err := encode("https://go.dev/"); err != nil {
		t.Fatal(err)
	}
	if n := len(hook.Entries); n != 0 {
		t.Errorf("%d log entries for short text", n)
	}

	// 9 emoji are 18 UTF-16 code units.
	if _, err := encode(strings.Repeat("😀", 9)); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil || e.Level != log.WarnLevel || e.Data["length"] != 18 {
		t.Fatalf("last entry = %v, want truncation warning", e)
	}
	hook.Reset()

	g.latin1 = true
	if _, err := encode(strings.Repeat("é", 17)); err != nil {
		t.Fatal(err)
	}
	if n := len(hook.Entries); n != 0 {
		t.Errorf("%d log entries for 17 Latin-1 characters", n)
	}
	if _, err := encode("€"); err == nil {
		t.Error("encode(€) in Latin-1 succeeded")
	}
}

func TestWriteFormats(t *testing.T) {
	setGlobals(t)
	dir := t.TempDir()
	c, err := encode("https://go.dev/")
	if err != nil {
		t.Fatal(err)
	}
	for i, check := range []func([]byte) bool{
		func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG\r\n")) },
		func(b []byte) bool {
			return bytes.HasPrefix(b, []byte("<?xml")) &&
				bytes.Contains(b, []byte(`fill="#000000"`))
		},
		func(b []byte) bool {
			return bytes.HasPrefix(b, []byte("P4\n256 256\n")) &&
				len(b) == len("P4\n256 256\n")+32*256
		},
		func(b []byte) bool {
			return bytes.Count(b, []byte("\n")) == 15 &&
				bytes.Contains(b, []byte("█"))
		},
		func(b []byte) bool {
			return bytes.Count(b, []byte("\n")) == 29 &&
				bytes.Contains(b, []byte("##"))
		},
	} {
		g.format = i
		g.fn = filepath.Join(dir, "code."+formats[i])
		if err := write(c); err != nil {
			t.Errorf("%s: %v", formats[i], err)
			continue
		}
		b, err := os.ReadFile(g.fn)
		if err != nil {
			t.Fatal(err)
		}
		if !check(b) {
			t.Errorf("%s: unexpected output %q", formats[i], b[:min(len(b), 40)])
		}
	}
}

func TestWriteColours(t *testing.T) {
	setGlobals(t)
	g.format = 1 // svg
	g.fn = filepath.Join(t.TempDir(), "code.svg")
	g.fg = rgba{0x33, 0x66, 0x99, 0xff}
	g.rev = true
	c, _ := encode("https://go.dev/")
	if err := write(c); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(g.fn)
	if !bytes.Contains(b, []byte(`<rect width="256" height="256" fill="#336699"/>`)) ||
		!bytes.Contains(b, []byte(`<path fill="#ffffff"`)) {
		t.Errorf("reversed colours not applied:\n%s", b[:min(len(b), 300)])
	}
}

func TestWriteError(t *testing.T) {
	setGlobals(t)
	g.fn = filepath.Join(t.TempDir(), "missing", "code.png")
	c, _ := encode("https://go.dev/")
	if err := write(c); err == nil {
		t.Error("write to a missing directory succeeded")
	}
}
