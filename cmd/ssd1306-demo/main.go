package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/host/v3"

	"github.com/BeatGlow/ssd1306"
	"github.com/BeatGlow/ssd1306/pixel"
)

// smiley is a 16x16 page packed bitmap.
var smiley = []byte{
	0xe0, 0x18, 0x04, 0x02, 0x02, 0x31, 0x31, 0x01,
	0x01, 0x31, 0x31, 0x02, 0x02, 0x04, 0x18, 0xe0,
	0x07, 0x18, 0x20, 0x41, 0x42, 0x84, 0x84, 0x84,
	0x84, 0x84, 0x84, 0x42, 0x41, 0x20, 0x18, 0x07,
}

func main() {
	var speed = ssd1306.DefaultSPIConfig.Speed
	flag.Var(&speed, "spi-speed", "SPI bus speed")
	spiPortFlag := flag.String("spi-port", "", "SPI port (default: use first available)")
	resetPinFlag := flag.String("reset", ssd1306.DefaultSPIConfig.Reset, "Reset GPIO pin")
	dcPinFlag := flag.String("dc", ssd1306.DefaultSPIConfig.DC, "Data/Command GPIO pin (DC)")
	i2cBusFlag := flag.String("i2c-bus", "", "I²C bus (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ssd1306.DefaultI2CConfig.Addr), "I²C device address")
	vccFlag := flag.String("vcc", "switchcap", "Panel supply, external or switchcap")
	pageFlag := flag.Duration("page", 2*time.Second, "Time each demo page is shown")
	durationFlag := flag.Duration("duration", 0, "Run time (default: until interrupted)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <spi|i2c>\n", os.Args[0])
		os.Exit(1)
	}

	vcc, err := ssd1306.ParseVccType(*vccFlag)
	if err != nil {
		fatal(err)
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	var t ssd1306.Transport
	switch busType := flag.Arg(0); busType {
	case "spi":
		t, err = ssd1306.OpenSPI(&ssd1306.SPIConfig{
			Port:  *spiPortFlag,
			Speed: speed,
			Reset: *resetPinFlag,
			DC:    *dcPinFlag,
		})
	case "i2c":
		var reset string
		if isFlagSet("reset") {
			reset = *resetPinFlag
		}
		t, err = ssd1306.OpenI2C(&ssd1306.I2CConfig{
			Bus:   *i2cBusFlag,
			Addr:  uint16(*i2cAddrFlag),
			Reset: reset,
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	log.Printf("using connection: %s", t)

	config := ssd1306.DefaultConfig
	config.Vcc = vcc
	output, err := ssd1306.New(t, &config)
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	log.Printf("using driver: %s, %s VCC", output, vcc)

	if err = boot(output); err != nil {
		_ = output.Close()
		fatal(err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var timeout <-chan time.Time
	if *durationFlag > 0 {
		timeout = time.After(*durationFlag)
	}

	ticker := time.NewTicker(*pageFlag)
	defer ticker.Stop()

	log.Println("hit control-c to stop...")
	for page := 0; ; page++ {
		select {
		case sig := <-signals:
			log.Printf("received %s, stopping", sig)
			return
		case <-timeout:
			return
		case <-ticker.C:
		}
		if err = pages[page%len(pages)](output); err != nil {
			_ = output.Close()
			fatal(err)
		}
	}
}

func isFlagSet(name string) (set bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}

func boot(output *ssd1306.Display) error {
	if err := output.ClearScreen(); err != nil {
		return err
	}
	for i, line := range []string{
		"SSD1306 demo",
		"",
		fmt.Sprintf("%dx%d pixels", ssd1306.Width, ssd1306.Height),
		fmt.Sprintf("%d chars per line", ssd1306.Width/6),
		"",
		time.Now().Format(time.DateTime),
	} {
		if err := output.DrawString(0, i, line); err != nil {
			return err
		}
	}
	return output.Refresh()
}

// pages are the demo screens, each one draws a full frame and refreshes.
var pages = []func(*ssd1306.Display) error{
	drawLines,
	drawShapes,
	drawLogo,
	drawScaled,
	drawInverted,
}

func drawLines(output *ssd1306.Display) (err error) {
	if err = output.ClearScreen(); err != nil {
		return
	}
	r := output.Bounds()
	for x := 0; x < r.Dx(); x += 8 {
		if err = output.DrawLine(0, 0, x, r.Dy()-1, pixel.On); err != nil {
			return
		}
		if err = output.DrawLine(r.Dx()-1, 0, r.Dx()-1-x, r.Dy()-1, pixel.On); err != nil {
			return
		}
	}
	return output.Refresh()
}

func drawShapes(output *ssd1306.Display) (err error) {
	if err = output.ClearScreen(); err != nil {
		return
	}
	for _, draw := range []func() error{
		func() error { return output.DrawRectangle(0, 0, ssd1306.Width, ssd1306.Height, pixel.On) },
		func() error { return output.FillRectangle(4, 4, 20, 12, pixel.On) },
		func() error { return output.DrawRoundedRectangle(28, 4, 36, 24, 6, pixel.On) },
		func() error { return output.FillRoundedRectangle(68, 4, 36, 24, 6, pixel.On) },
		func() error { return output.DrawCircle(20, 44, 12, pixel.On) },
		func() error { return output.FillCircle(52, 44, 12, pixel.On) },
		func() error { return output.DrawLabel(72, 52, "shapes", pixel.On) },
	} {
		if err = draw(); err != nil {
			return
		}
	}
	return output.Refresh()
}

func drawLogo(output *ssd1306.Display) (err error) {
	if err = output.ClearScreen(); err != nil {
		return
	}
	for y := 0; y < ssd1306.Height; y += 16 {
		for x := (y / 16 % 2) * 16; x < ssd1306.Width; x += 32 {
			if err = output.DrawBitmap(x, y, smiley, 16, 16, pixel.On); err != nil {
				return
			}
		}
	}
	return output.Refresh()
}

func drawScaled(output *ssd1306.Display) (err error) {
	if err = output.ClearScreen(); err != nil {
		return
	}
	if err = output.DrawImage(output.Bounds(), checkerboard(8, 4)); err != nil {
		return
	}
	return output.Refresh()
}

func drawInverted(output *ssd1306.Display) (err error) {
	for _, invert := range []bool{true, false, true, false} {
		if err = output.InvertDisplay(invert); err != nil {
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	return
}

// checkerboard returns a w by h gray image with alternating cells.
func checkerboard(w, h int) image.Image {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				m.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return m
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
