// Package framebuffer provides the page-addressed pixel store of a monochrome display.
//
// The store is organized in pages of 8 pixel rows. One byte holds 8 vertically
// stacked pixels of a single column with the top pixel in the least significant
// bit, which is the memory layout of the SSD1xxx controller family. The bit for
// pixel (x, y) lives at byte x + (y/8)*width, bit y%8.
//
// Writes outside of the buffer bounds are silently ignored.
package framebuffer

import (
	"image"
	"image/color"
	"io"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/pixel"
)

// PageHeight is the number of pixel rows packed in one byte.
const PageHeight = 8

// FrameBuffer is a 1-bit per pixel vertical LSB image.
type FrameBuffer struct {
	rect  image.Rectangle
	pix   []byte
	width int
}

// New allocates a cleared frame buffer.
func New(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pages := (height + PageHeight - 1) / PageHeight // round up to whole bytes
	return &FrameBuffer{
		rect:  image.Rect(0, 0, width, height),
		pix:   make([]byte, pages*width),
		width: width,
	}
}

// Bounds is the buffer bounding box.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return fb.rect
}

func (fb *FrameBuffer) ColorModel() color.Model {
	return pixel.MonoModel
}

// Len is the size of the store in bytes.
func (fb *FrameBuffer) Len() int {
	return len(fb.pix)
}

// Pages is the number of 8 pixel tall rows.
func (fb *FrameBuffer) Pages() int {
	if fb.width == 0 {
		return 0
	}
	return len(fb.pix) / fb.width
}

func (fb *FrameBuffer) offset(x, y int) (pos int, bit byte, ok bool) {
	if !(image.Point{X: x, Y: y}).In(fb.rect) {
		return 0, 0, false
	}
	return x + y/PageHeight*fb.width, byte(1) << uint(y%PageHeight), true
}

// SetPixel turns the pixel at (x, y) on or off.
func (fb *FrameBuffer) SetPixel(x, y int, c pixel.Mono) {
	pos, bit, ok := fb.offset(x, y)
	if !ok {
		return
	}
	if c.On {
		fb.pix[pos] |= bit
	} else {
		fb.pix[pos] &^= bit
	}
}

// Pixel returns the pixel at (x, y), off for pixels outside of the buffer.
func (fb *FrameBuffer) Pixel(x, y int) pixel.Mono {
	pos, bit, ok := fb.offset(x, y)
	if !ok {
		return pixel.Off
	}
	return pixel.Mono{On: fb.pix[pos]&bit != 0}
}

func (fb *FrameBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(fb.rect) {
		return color.Transparent
	}
	return fb.Pixel(x, y)
}

func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, pixel.ToMono(c))
}

// SetColumn overwrites the raw byte at offset, which holds the 8 pixels of one
// page column. Offsets outside of the store are ignored.
func (fb *FrameBuffer) SetColumn(offset int, b byte) {
	if offset < 0 || offset >= len(fb.pix) {
		return
	}
	fb.pix[offset] = b
}

// Clear turns all pixels off.
func (fb *FrameBuffer) Clear() {
	fb.fill(0x00)
}

// Fill the buffer with a single color.
func (fb *FrameBuffer) Fill(c color.Color) {
	var value byte
	if pixel.ToMono(c).On {
		value = 0xff
	}
	fb.fill(value)
}

// fill sets a small prefix and doubles it until the store is covered.
func (fb *FrameBuffer) fill(value byte) {
	if len(fb.pix) == 0 {
		return
	}
	n := min(16, len(fb.pix))
	for i := 0; i < n; i++ {
		fb.pix[i] = value
	}
	for n < len(fb.pix) {
		n += copy(fb.pix[n:], fb.pix[:n])
	}
}

// Bytes returns a copy of the store.
func (fb *FrameBuffer) Bytes() []byte {
	out := make([]byte, len(fb.pix))
	copy(out, fb.pix)
	return out
}

// WriteTo writes the raw store to w.
func (fb *FrameBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(fb.pix)
	return int64(n), err
}

// Interface checks.
var (
	_ draw.Image  = (*FrameBuffer)(nil)
	_ io.WriterTo = (*FrameBuffer)(nil)
)
