package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1306/framebuffer"
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
)

// Reset pulse timing.
const (
	resetSettle = 1 * time.Millisecond
	resetPulse  = 10 * time.Millisecond
)

var sleep = time.Sleep

// Controller drives the SSD1306 over a Transport and owns the frame buffer
// that is sent on Refresh.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	t   Transport
	buf *framebuffer.FrameBuffer
}

func newController(t Transport) *Controller {
	return &Controller{
		t:   t,
		buf: framebuffer.New(Width, Height),
	}
}

func (c *Controller) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", Width, Height)
}

// Bounds is the display bounding box.
func (c *Controller) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

func (c *Controller) check() error {
	if c.t == nil {
		return ErrClosed
	}
	return nil
}

// Reset pulses the reset line so the controller samples its configuration
// pins: high, low for 10ms, then high again.
func (c *Controller) Reset() (err error) {
	if err = c.check(); err != nil {
		return
	}
	if debug {
		log.Printf("ssd1306: reset via %s", c.t)
	}
	if err = c.reset(gpio.High); err != nil {
		return
	}
	sleep(resetSettle)
	if err = c.reset(gpio.Low); err != nil {
		return
	}
	sleep(resetPulse)
	return c.reset(gpio.High)
}

// Initialize sends the power-up sequence for the given supply configuration
// and leaves the transport in data mode. The panel is switched on.
func (c *Controller) Initialize(vcc VccType) (err error) {
	if err = c.check(); err != nil {
		return
	}
	if debug {
		log.Printf("ssd1306: initialize with %s VCC", vcc)
	}
	if err = c.mode(false); err != nil {
		return
	}
	for _, command := range initSequence(vcc) {
		if err = c.write(command); err != nil {
			return
		}
	}
	return c.mode(true)
}

// SendCommand sends a command with optional parameters.
func (c *Controller) SendCommand(command Command, params ...byte) (err error) {
	if err = c.check(); err != nil {
		return
	}
	if err = c.mode(false); err != nil {
		return
	}
	return c.write(append([]byte{byte(command)}, params...))
}

func (c *Controller) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = c.SendCommand(Command(command[0]), command[1:]...); err != nil {
			return
		}
	}
	return
}

// Refresh sends the whole frame buffer to the display.
func (c *Controller) Refresh() (err error) {
	if err = c.check(); err != nil {
		return
	}
	if err = c.commands(
		[]byte{byte(SetColumnAddr), 0x00, Width - 1},
		[]byte{byte(SetPageAddr), 0x00, byte(c.buf.Pages() - 1)},
	); err != nil {
		return
	}
	if err = c.mode(true); err != nil {
		return
	}
	if debug {
		log.Printf("ssd1306: refresh %d bytes", c.buf.Len())
	}
	_, err = c.buf.WriteTo(dataWriter{c.t})
	return
}

// InvertDisplay toggles between inverted and normal display mode.
func (c *Controller) InvertDisplay(invert bool) error {
	if invert {
		return c.SendCommand(SetInvertDisplay)
	}
	return c.SendCommand(SetNormalDisplay)
}

// SetContrast adjusts the contrast level.
func (c *Controller) SetContrast(level uint8) error {
	return c.SendCommand(SetContrast, level)
}

// Show toggles the display on or off. The display RAM is retained while off.
func (c *Controller) Show(show bool) error {
	if show {
		return c.SendCommand(SetDisplayOn)
	}
	return c.SendCommand(SetDisplayOff)
}

// Close switches the display off and releases the Transport and the frame
// buffer. The Transport is released even if switching off fails.
func (c *Controller) Close() error {
	if err := c.check(); err != nil {
		return err
	}
	err := c.Show(false)
	if cerr := c.t.Close(); cerr != nil {
		err = errors.Join(err, &TransportError{Op: "close", Err: cerr})
	}
	c.t, c.buf = nil, nil
	return err
}

func (c *Controller) reset(level gpio.Level) error {
	if err := c.t.SetResetLine(level); err != nil {
		return &TransportError{Op: "reset", Err: err}
	}
	return nil
}

func (c *Controller) mode(data bool) error {
	if err := c.t.SetDataCommandLine(data); err != nil {
		op := "select command mode"
		if data {
			op = "select data mode"
		}
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

func (c *Controller) write(data []byte) error {
	if err := c.t.WriteBytes(data); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}

// dataWriter adapts the Transport to io.Writer.
type dataWriter struct {
	t Transport
}

func (w dataWriter) Write(p []byte) (int, error) {
	if err := w.t.WriteBytes(p); err != nil {
		return 0, &TransportError{Op: "write", Err: err}
	}
	return len(p), nil
}
