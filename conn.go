package ssd1306

import (
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Transport errors.
var (
	ErrResetPin = errors.New("ssd1306: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("ssd1306: data/command (DC) GPIO pin is invalid")
)

// Transport is the byte stream and the two control lines used to talk to the
// controller. Implementations block until the bus transaction completes.
type Transport interface {
	String() string

	// Close releases the bus.
	Close() error

	// SetDataCommandLine selects data (true) or command (false) transfers.
	SetDataCommandLine(data bool) error

	// SetResetLine drives the reset line.
	SetResetLine(level gpio.Level) error

	// WriteBytes writes all bytes in order.
	WriteBytes(data []byte) error
}

// TransportError is returned when the Transport fails.
type TransportError struct {
	Op  string
	Err error
}

func (err *TransportError) Error() string {
	return fmt.Sprintf("ssd1306: %s: %v", err.Op, err.Err)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// defaultBatchSize is the largest single bus write when the bus reports no limit.
const defaultBatchSize = 4096

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the SPI port name in the periph registry, empty for the first
	// available port.
	Port string

	// Speed is the SPI clock.
	Speed physic.Frequency

	// BatchSize is the largest single write.
	BatchSize int

	// Reset pin name.
	Reset string

	// DC (data/command) pin name.
	DC string
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed:     10 * physic.MegaHertz,
	BatchSize: defaultBatchSize,
	Reset:     "GPIO25",
	DC:        "GPIO24",
}

// ValidSPISpeeds are the supported SPI bus speeds. The SSD1306 serial clock
// cycle time is 100ns at minimum.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	10 * physic.MegaHertz,
}

type spiConn struct {
	port      spi.PortCloser
	bus       spi.Conn
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	batchSize int
}

// OpenSPI opens the SPI port and GPIO pins named in config. The periph host
// drivers must be initialized.
func OpenSPI(config *SPIConfig) (Transport, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.Speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("ssd1306: invalid SPI speed %s", config.Speed)
	}

	reset := gpioreg.ByName(config.Reset)
	if reset == nil {
		return nil, ErrResetPin
	}
	dc := gpioreg.ByName(config.DC)
	if dc == nil {
		return nil, ErrDCPin
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	t, err := NewSPI(port, dc, reset, config.Speed)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	c := t.(*spiConn)
	c.port = port
	if config.BatchSize > 0 && config.BatchSize < c.batchSize {
		c.batchSize = config.BatchSize
	}
	return c, nil
}

// NewSPI connects to port in SPI mode 0. The port is not closed by the
// returned Transport.
func NewSPI(port spi.Port, dc, reset gpio.PinOut, speed physic.Frequency) (Transport, error) {
	if reset == nil || reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}

	bus, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return &spiConn{
		bus:       bus,
		reset:     reset,
		dc:        dc,
		batchSize: batchSize(bus),
	}, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	if c.port == nil {
		return nil
	}
	return c.port.Close()
}

func (c *spiConn) SetResetLine(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) SetDataCommandLine(data bool) error {
	level := gpio.Level(data)
	if c.dcValid && c.dcLevel == level {
		return nil
	}
	if err := c.dc.Out(level); err != nil {
		return err
	}
	c.dcLevel, c.dcValid = level, true
	return nil
}

func (c *spiConn) WriteBytes(data []byte) error {
	return writeChunked(data, c.batchSize, func(p []byte) error {
		return c.bus.Tx(p, nil)
	})
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the I²C bus name in the periph registry, empty for the first
	// available bus.
	Bus string

	// Addr is the I²C address.
	Addr uint16

	// Reset pin name, empty if the reset line is not wired.
	Reset string
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Addr: 0x3c,
}

// I²C control bytes, they replace the data/command line.
const (
	i2cCommandStream = 0x00
	i2cDataStream    = 0x40
)

type i2cConn struct {
	bus       i2c.BusCloser
	dev       *i2c.Dev
	reset     gpio.PinOut
	data      bool
	batchSize int
}

// OpenI2C opens the I²C bus named in config. The periph host drivers must be
// initialized.
func OpenI2C(config *I2CConfig) (Transport, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	var reset gpio.PinOut
	if config.Reset != "" {
		pin := gpioreg.ByName(config.Reset)
		if pin == nil {
			return nil, ErrResetPin
		}
		reset = pin
	}

	bus, err := i2creg.Open(config.Bus)
	if err != nil {
		return nil, err
	}

	c := NewI2C(bus, config.Addr, reset).(*i2cConn)
	c.bus = bus
	return c, nil
}

// NewI2C returns a Transport for the device at addr. The reset pin is
// optional. The bus is not closed by the returned Transport.
func NewI2C(bus i2c.Bus, addr uint16, reset gpio.PinOut) Transport {
	if reset == gpio.INVALID {
		reset = nil
	}
	return &i2cConn{
		dev:       &i2c.Dev{Bus: bus, Addr: addr},
		reset:     reset,
		batchSize: defaultBatchSize,
	}
}

func (c *i2cConn) String() string {
	return fmt.Sprintf("I²C device %s", c.dev)
}

func (c *i2cConn) Close() error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Close()
}

func (c *i2cConn) SetResetLine(level gpio.Level) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.Out(level)
}

func (c *i2cConn) SetDataCommandLine(data bool) error {
	c.data = data
	return nil
}

func (c *i2cConn) WriteBytes(data []byte) error {
	control := byte(i2cCommandStream)
	if c.data {
		control = i2cDataStream
	}
	return writeChunked(data, c.batchSize, func(p []byte) error {
		return c.dev.Tx(append([]byte{control}, p...), nil)
	})
}

// batchSize returns the largest write supported by the connection.
func batchSize(c conn.Conn) int {
	if l, ok := c.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 && n < defaultBatchSize {
			return n
		}
	}
	return defaultBatchSize
}

func writeChunked(data []byte, size int, write func([]byte) error) (err error) {
	if size <= 0 {
		size = defaultBatchSize
	}
	if len(data) <= size {
		return write(data)
	}

	if debug {
		log.Printf("ssd1306: write %d bytes of data in %d chunks", len(data), (len(data)+size-1)/size)
	}
	buffer := data
	for len(buffer) > 0 {
		n := min(size, len(buffer))
		if err = write(buffer[:n]); err != nil {
			return
		}
		buffer = buffer[n:]
	}
	return
}
