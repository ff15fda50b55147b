// Package ssd1306 is a driver for the SSD1306 128x64 monochrome OLED display.
//
// Drawing happens in an in-memory frame buffer that is sent to the display as
// a whole by Refresh. With auto refresh enabled every drawing call sends the
// frame buffer when it completes; otherwise the caller batches drawing calls
// and refreshes explicitly.
//
// Pixels outside of the display are silently dropped by every drawing call.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/fixedfont"
	"github.com/BeatGlow/ssd1306/framebuffer"
	"github.com/BeatGlow/ssd1306/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SSD1306_DEBUG") != ""
}

// Errors
var (
	ErrClosed = errors.New("ssd1306: display is closed")
	ErrSize   = errors.New("ssd1306: unsupported display size")
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, only 128 is supported.
	Width int

	// Height of the display in pixels, only 64 is supported.
	Height int

	// Vcc is the panel supply configuration.
	Vcc VccType

	// AutoRefresh sends the frame buffer after every drawing call.
	AutoRefresh bool
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Width:  Width,
	Height: Height,
	Vcc:    SwitchCapVCC,
}

// Display is a SSD1306 display with drawing operations.
type Display struct {
	*Controller
	autoRefresh bool
}

// New resets and initializes the display behind t. If that fails, t is closed.
func New(t Transport, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Width == 0 {
		config.Width = Width
	}
	if config.Height == 0 {
		config.Height = Height
	}
	if config.Width != Width || config.Height != Height {
		_ = t.Close()
		return nil, fmt.Errorf("%w %dx%d", ErrSize, config.Width, config.Height)
	}

	d := &Display{
		Controller:  newController(t),
		autoRefresh: config.AutoRefresh,
	}
	if err := d.init(config.Vcc); err != nil {
		_ = t.Close()
		d.t, d.buf = nil, nil
		return nil, err
	}
	return d, nil
}

func (d *Display) init(vcc VccType) (err error) {
	if err = d.Reset(); err != nil {
		return
	}
	return d.Initialize(vcc)
}

// AutoRefresh reports whether drawing calls refresh the display.
func (d *Display) AutoRefresh() bool {
	return d.autoRefresh
}

// SetAutoRefresh enables or disables refreshing after every drawing call.
func (d *Display) SetAutoRefresh(enable bool) {
	d.autoRefresh = enable
}

// update applies fn to the frame buffer and refreshes if auto refresh is on.
func (d *Display) update(fn func(fb *framebuffer.FrameBuffer)) error {
	if err := d.check(); err != nil {
		return err
	}
	fn(d.buf)
	if d.autoRefresh {
		return d.Refresh()
	}
	return nil
}

// Pixel returns the frame buffer pixel at (x, y).
func (d *Display) Pixel(x, y int) (pixel.Mono, error) {
	if err := d.check(); err != nil {
		return pixel.Off, err
	}
	return d.buf.Pixel(x, y), nil
}

// Bytes returns a copy of the frame buffer in display memory layout.
func (d *Display) Bytes() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.buf.Bytes(), nil
}

// ClearScreen turns all pixels off.
func (d *Display) ClearScreen() error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		fb.Clear()
	})
}

// Fill sets all pixels to c.
func (d *Display) Fill(c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		fb.Fill(c)
	})
}

// DrawPixel sets the pixel at (x, y).
func (d *Display) DrawPixel(x, y int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Pixel(fb, x, y, c)
	})
}

// DrawLine draws a line from (x0, y0) to (x1, y1), end points included.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Line(fb, x0, y0, x1, y1, c)
	})
}

// DrawRectangle draws the outline of the w by h rectangle at (x, y).
func (d *Display) DrawRectangle(x, y, w, h int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Rectangle(fb, x, y, w, h, c)
	})
}

// FillRectangle fills the w by h rectangle at (x, y).
func (d *Display) FillRectangle(x, y, w, h int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Box(fb, x, y, w, h, c)
	})
}

// DrawRoundedRectangle draws the outline of a rectangle with rounded corners.
func (d *Display) DrawRoundedRectangle(x, y, w, h, r int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.RoundedRectangle(fb, x, y, w, h, r, c)
	})
}

// FillRoundedRectangle fills a rectangle with rounded corners.
func (d *Display) FillRoundedRectangle(x, y, w, h, r int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.RoundedBox(fb, x, y, w, h, r, c)
	})
}

// DrawCircle draws a circle with radius r around (x0, y0).
func (d *Display) DrawCircle(x0, y0, r int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Circle(fb, x0, y0, r, c)
	})
}

// FillCircle draws a filled circle with radius r around (x0, y0).
func (d *Display) FillCircle(x0, y0, r int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.FilledCircle(fb, x0, y0, r, c)
	})
}

// DrawBitmap plots the set bits of a w by h bitmap at (x, y). The bitmap is
// packed like the frame buffer, 8 rows per byte with the top row in bit 0.
func (d *Display) DrawBitmap(x, y int, bitmap []byte, w, h int, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Bitmap(fb, x, y, bitmap, w, h, c)
	})
}

// DrawImage scales src into r.
func (d *Display) DrawImage(r image.Rectangle, src image.Image) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		draw.Scale(fb, r, src)
	})
}

// DrawCharacter writes a 5x7 character at column x of text line line. Text
// lines are 8 pixels high; the character replaces the whole 5x8 cell.
func (d *Display) DrawCharacter(x, line int, c rune) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		fixedfont.DrawCharacter(fb, x, line, c)
	})
}

// DrawString writes text with the 5x7 font starting at column x of text line
// line, wrapping at the right edge. Text past the last line is dropped.
func (d *Display) DrawString(x, line int, text string) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		fixedfont.DrawString(fb, x, line, text)
	})
}

// DrawLabel draws text with the 7x13 basic font, (x, y) is the start of the
// baseline. Unlike DrawString, the text is composed pixel by pixel and may be
// placed at any row.
func (d *Display) DrawLabel(x, y int, text string, c color.Color) error {
	return d.update(func(fb *framebuffer.FrameBuffer) {
		drawer := font.Drawer{
			Dst:  fb,
			Src:  image.NewUniform(pixel.ToMono(c)),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x, y),
		}
		drawer.DrawString(text)
	})
}
