// Package fixedfont renders text with the classic 5x7 GLCD font.
//
// Glyphs are written straight into the page memory of the frame buffer: each
// of the 5 glyph columns replaces a whole page byte, so a character occupies a
// 5 by 8 pixel cell aligned to a page ("line"). This bypasses per-pixel
// addressing and assumes a page stride of exactly 128 bytes.
package fixedfont

import "image"

const (
	// GlyphWidth is the number of columns in a glyph.
	GlyphWidth = 5

	// GlyphHeight is the number of rows in a glyph body. Descenders of
	// characters such as 'g' and 'p' reach into the eighth row.
	GlyphHeight = 7

	// Advance is the cursor advance per character, one blank spacer column
	// included.
	Advance = GlyphWidth + 1

	// Stride is the number of bytes per text line in the frame buffer.
	Stride = 128

	// LineHeight is the number of pixel rows per text line.
	LineHeight = 8
)

// Columns is a page addressed store where one byte holds an 8 pixel column.
type Columns interface {
	// Bounds is the store size in pixels.
	Bounds() image.Rectangle

	// SetColumn overwrites the byte at offset.
	SetColumn(offset int, b byte)
}

// Glyph returns the columns of the glyph for c. Characters outside of the
// table are blank.
func Glyph(c rune) (g [GlyphWidth]byte) {
	i := int(c) * GlyphWidth
	if c < 0 || i+GlyphWidth > len(glyphs) {
		return
	}
	copy(g[:], glyphs[i:i+GlyphWidth])
	return
}

// DrawCharacter writes the glyph for c at column x of text line line.
func DrawCharacter(dst Columns, x, line int, c rune) {
	g := Glyph(c)
	for i, b := range g {
		dst.SetColumn(x+i+line*Stride, b)
	}
}

// DrawString writes s starting at column x of text line line. Text wraps to
// the start of the next line when the next character does not fit, and any
// characters past the last line are dropped.
func DrawString(dst Columns, x, line int, s string) {
	var (
		size  = dst.Bounds().Size()
		lines = size.Y / LineHeight
	)
	if line < 0 || line >= lines {
		return
	}
	for _, c := range s {
		DrawCharacter(dst, x, line, c)

		x += Advance
		if x+Advance >= size.X {
			x = 0
			line++
		}
		if line >= lines {
			return
		}
	}
}

// Lines returns the number of text lines dst can hold.
func Lines(dst Columns) int {
	return dst.Bounds().Dy() / LineHeight
}

// CharsPerLine returns the number of characters drawn on a line starting at
// column 0 before the text wraps.
func CharsPerLine(dst Columns) int {
	w := dst.Bounds().Dx()
	if w < GlyphWidth {
		return 0
	}
	n := 0
	for x := 0; ; x += Advance {
		n++
		if x+Advance+Advance >= w {
			return n
		}
	}
}
