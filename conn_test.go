package ssd1306

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestNewSPIPins(t *testing.T) {
	pin := &gpiotest.Pin{N: "pin"}
	if _, err := NewSPI(&spitest.Record{}, pin, nil, 0); !errors.Is(err, ErrResetPin) {
		t.Errorf("expected ErrResetPin, got %v", err)
	}
	if _, err := NewSPI(&spitest.Record{}, nil, pin, 0); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected ErrDCPin, got %v", err)
	}
	if _, err := NewSPI(&spitest.Record{}, gpio.INVALID, pin, 0); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected ErrDCPin, got %v", err)
	}
}

func TestSPI(t *testing.T) {
	var (
		port  = &spitest.Record{}
		dc    = &gpiotest.Pin{N: "DC"}
		reset = &gpiotest.Pin{N: "RST"}
	)
	c, err := NewSPI(port, dc, reset, physic.MegaHertz)
	if err != nil {
		t.Fatal(err)
	}

	if err = c.SetResetLine(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if reset.Read() != gpio.Low {
		t.Error("expected reset line low")
	}
	if err = c.SetResetLine(gpio.High); err != nil {
		t.Fatal(err)
	}
	if reset.Read() != gpio.High {
		t.Error("expected reset line high")
	}

	if err = c.SetDataCommandLine(true); err != nil {
		t.Fatal(err)
	}
	if dc.Read() != gpio.High {
		t.Error("expected DC line high in data mode")
	}
	if err = c.SetDataCommandLine(false); err != nil {
		t.Fatal(err)
	}
	if dc.Read() != gpio.Low {
		t.Error("expected DC line low in command mode")
	}

	if err = c.WriteBytes([]byte{0xAE, 0xAF}); err != nil {
		t.Fatal(err)
	}
	if len(port.Ops) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(port.Ops))
	}
	if want := []byte{0xAE, 0xAF}; !bytes.Equal(port.Ops[0].W, want) {
		t.Errorf("expected % x, got % x", want, port.Ops[0].W)
	}

	// Not opened by the transport, so not closed either.
	if err = c.Close(); err != nil {
		t.Error(err)
	}
}

func TestSPIDataCommandCache(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	c, err := NewSPI(&spitest.Record{}, dc, &gpiotest.Pin{N: "RST"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.SetDataCommandLine(true); err != nil {
		t.Fatal(err)
	}

	// Driving the pin behind the transport's back is not noticed while the
	// cached level matches.
	_ = dc.Out(gpio.Low)
	if err = c.SetDataCommandLine(true); err != nil {
		t.Fatal(err)
	}
	if dc.Read() != gpio.Low {
		t.Error("expected cached DC level to skip the pin write")
	}
	if err = c.SetDataCommandLine(false); err != nil {
		t.Fatal(err)
	}
	if err = c.SetDataCommandLine(true); err != nil {
		t.Fatal(err)
	}
	if dc.Read() != gpio.High {
		t.Error("expected DC line high")
	}
}

func TestSPIDisplay(t *testing.T) {
	var (
		port  = &spitest.Record{}
		dc    = &gpiotest.Pin{N: "DC"}
		reset = &gpiotest.Pin{N: "RST"}
	)
	c, err := NewSPI(port, dc, reset, 0)
	if err != nil {
		t.Fatal(err)
	}
	testSleep(t, new(recorder))

	d, err := New(c, &Config{Vcc: ExternalVCC})
	if err != nil {
		t.Fatal(err)
	}
	var sent []byte
	for _, op := range port.Ops {
		sent = append(sent, op.W...)
	}
	var want []byte
	for _, command := range initSequence(ExternalVCC) {
		want = append(want, command...)
	}
	if !bytes.Equal(sent, want) {
		t.Errorf("expected\n% x\ngot\n% x", want, sent)
	}
	if dc.Read() != gpio.High {
		t.Error("expected data mode after initialization")
	}
	if reset.Read() != gpio.High {
		t.Error("expected reset line released")
	}

	port.Ops = nil
	if err = d.Refresh(); err != nil {
		t.Fatal(err)
	}
	if len(port.Ops) != 3 {
		t.Fatalf("expected 3 transfers, got %d", len(port.Ops))
	}
	if n := len(port.Ops[2].W); n != 1024 {
		t.Errorf("expected 1024 data bytes, got %d", n)
	}
}

func TestI2C(t *testing.T) {
	bus := &i2ctest.Record{}
	c := NewI2C(bus, 0x3c, nil)

	// No reset line wired.
	if err := c.SetResetLine(gpio.Low); err != nil {
		t.Fatal(err)
	}

	if err := c.SetDataCommandLine(false); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteBytes([]byte{0xAE}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetDataCommandLine(true); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteBytes([]byte{0x01, 0x02}); err != nil {
		t.Fatal(err)
	}

	want := []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0x00, 0xAE}},
		{Addr: 0x3c, W: []byte{0x40, 0x01, 0x02}},
	}
	if len(bus.Ops) != len(want) {
		t.Fatalf("expected %d transfers, got %d", len(want), len(bus.Ops))
	}
	for i, op := range bus.Ops {
		if op.Addr != want[i].Addr || !bytes.Equal(op.W, want[i].W) {
			t.Errorf("transfer %d: expected %#x % x, got %#x % x", i, want[i].Addr, want[i].W, op.Addr, op.W)
		}
	}
}

func TestI2CReset(t *testing.T) {
	reset := &gpiotest.Pin{N: "RST"}
	c := NewI2C(&i2ctest.Record{}, 0x3d, reset)
	if err := c.SetResetLine(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if reset.Read() != gpio.Low {
		t.Error("expected reset line low")
	}
}

func TestI2CChunks(t *testing.T) {
	bus := &i2ctest.Record{}
	c := NewI2C(bus, 0x3c, nil)
	c.(*i2cConn).batchSize = 16
	_ = c.SetDataCommandLine(true)

	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	if err := c.WriteBytes(data); err != nil {
		t.Fatal(err)
	}
	if len(bus.Ops) != 3 {
		t.Fatalf("expected 3 transfers, got %d", len(bus.Ops))
	}
	var got []byte
	for _, op := range bus.Ops {
		if op.W[0] != i2cDataStream {
			t.Errorf("expected data control byte, got %#02x", op.W[0])
		}
		got = append(got, op.W[1:]...)
	}
	if !bytes.Equal(got, data) {
		t.Error("expected chunks to add up to the data")
	}
}

func TestWriteChunked(t *testing.T) {
	tests := []struct {
		name string
		size int
		want []int
	}{
		{"single", 16, []int{10}},
		{"exact", 5, []int{5, 5}},
		{"split", 4, []int{4, 4, 2}},
		{"default", 0, []int{10}},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			var sizes []int
			err := writeChunked(make([]byte, 10), test.size, func(p []byte) error {
				sizes = append(sizes, len(p))
				return nil
			})
			if err != nil {
				it.Fatal(err)
			}
			if len(sizes) != len(test.want) {
				it.Fatalf("expected %v, got %v", test.want, sizes)
			}
			for i := range sizes {
				if sizes[i] != test.want[i] {
					it.Fatalf("expected %v, got %v", test.want, sizes)
				}
			}
		})
	}

	failure := errors.New("failure")
	var calls int
	err := writeChunked(make([]byte, 10), 4, func([]byte) error {
		calls++
		return failure
	})
	if !errors.Is(err, failure) || calls != 1 {
		t.Errorf("expected to stop at the first failure, got %v after %d calls", err, calls)
	}
}
