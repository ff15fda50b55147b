package fixedfont_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BeatGlow/ssd1306/fixedfont"
	"github.com/BeatGlow/ssd1306/framebuffer"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		c    rune
		want [5]byte
	}{
		{' ', [5]byte{}},
		{'A', [5]byte{0x7C, 0x12, 0x11, 0x12, 0x7C}},
		{'0', [5]byte{0x3E, 0x51, 0x49, 0x45, 0x3E}},
		{'~', [5]byte{0x02, 0x01, 0x02, 0x04, 0x02}},
		{-1, [5]byte{}},
		{255, [5]byte{}},
		{'€', [5]byte{}},
	}
	for _, test := range tests {
		if v := fixedfont.Glyph(test.c); v != test.want {
			t.Errorf("glyph %q: expected % x, got % x", test.c, test.want, v)
		}
	}
}

func TestDrawCharacter(t *testing.T) {
	fb := framebuffer.New(128, 64)
	fixedfont.DrawCharacter(fb, 10, 2, 'A')

	want := make([]byte, 1024)
	copy(want[10+2*128:], []byte{0x7C, 0x12, 0x11, 0x12, 0x7C})
	if !bytes.Equal(fb.Bytes(), want) {
		t.Error("unexpected frame buffer contents")
	}

	// Whole columns are replaced.
	fb.Clear()
	fb.SetColumn(10+2*128, 0xff)
	fixedfont.DrawCharacter(fb, 10, 2, ' ')
	if fb.Pixel(10, 16).On || fb.Pixel(10, 23).On {
		t.Error("expected space to clear the column")
	}
}

func TestDrawString(t *testing.T) {
	fb := framebuffer.New(128, 64)
	fixedfont.DrawString(fb, 0, 0, "Hi")

	want := make([]byte, 1024)
	copy(want[0:], []byte{0x7F, 0x08, 0x08, 0x08, 0x7F})
	copy(want[6:], []byte{0x00, 0x44, 0x7D, 0x40, 0x00})
	if !bytes.Equal(fb.Bytes(), want) {
		t.Error("unexpected frame buffer contents")
	}
}

func TestDrawStringWrap(t *testing.T) {
	fb := framebuffer.New(128, 64)
	if n := fixedfont.CharsPerLine(fb); n != 21 {
		t.Fatalf("expected 21 characters per line, got %d", n)
	}

	s := strings.Repeat("-", 21) + "A"
	fixedfont.DrawString(fb, 0, 3, s)

	b := fb.Bytes()
	// Last character of line 3 starts at column 120.
	if v := b[120+3*128 : 125+3*128]; !bytes.Equal(v, []byte{0x08, 0x08, 0x08, 0x08, 0x08}) {
		t.Errorf("expected dash at column 120, got % x", v)
	}
	if v := b[126+3*128 : 128+3*128]; !bytes.Equal(v, []byte{0, 0}) {
		t.Errorf("expected columns past 125 to stay blank, got % x", v)
	}
	// The 22nd character continues at the start of line 4.
	if v := b[4*128 : 5+4*128]; !bytes.Equal(v, []byte{0x7C, 0x12, 0x11, 0x12, 0x7C}) {
		t.Errorf("expected wrapped A at line 4, got % x", v)
	}
}

func TestDrawStringOverflow(t *testing.T) {
	fb := framebuffer.New(128, 64)
	s := strings.Repeat("#", 21*8+10)
	fixedfont.DrawString(fb, 0, 0, s)

	b := fb.Bytes()
	hash := fixedfont.Glyph('#')
	for line := 0; line < 8; line++ {
		for n := 0; n < 21; n++ {
			off := n*fixedfont.Advance + line*128
			if !bytes.Equal(b[off:off+5], hash[:]) {
				t.Fatalf("expected # at line %d char %d", line, n)
			}
		}
	}

	// Drawing below the last line does nothing.
	before := fb.Bytes()
	fixedfont.DrawString(fb, 0, 8, "overflow")
	fixedfont.DrawString(fb, 0, -1, "underflow")
	if !bytes.Equal(fb.Bytes(), before) {
		t.Error("drawing outside of the text lines modified the buffer")
	}
}

func TestLines(t *testing.T) {
	if n := fixedfont.Lines(framebuffer.New(128, 64)); n != 8 {
		t.Errorf("expected 8 lines, got %d", n)
	}
	if n := fixedfont.Lines(framebuffer.New(128, 32)); n != 4 {
		t.Errorf("expected 4 lines, got %d", n)
	}
}
