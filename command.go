package ssd1306

import "fmt"

// Command is a controller opcode.
type Command byte

// Controller opcodes.
const (
	SetLowColumn          Command = 0x00
	SetHighColumn         Command = 0x10
	SetMemoryMode         Command = 0x20
	SetColumnAddr         Command = 0x21
	SetPageAddr           Command = 0x22
	SetStartLine          Command = 0x40
	SetContrast           Command = 0x81
	SetChargePump         Command = 0x8D
	SetSegmentRemap       Command = 0xA0
	SetDisplayAllOnResume Command = 0xA4
	SetDisplayAllOn       Command = 0xA5
	SetNormalDisplay      Command = 0xA6
	SetInvertDisplay      Command = 0xA7
	SetMultiplexRatio     Command = 0xA8
	SetDisplayOff         Command = 0xAE
	SetDisplayOn          Command = 0xAF
	SetComScanInc         Command = 0xC0
	SetComScanDec         Command = 0xC8
	SetDisplayOffset      Command = 0xD3
	SetDisplayClockDiv    Command = 0xD5
	SetPrecharge          Command = 0xD9
	SetComPins            Command = 0xDA
	SetVComDetect         Command = 0xDB
)

func (c Command) String() string {
	return fmt.Sprintf("%#02x", byte(c))
}

// VccType selects the panel supply configuration.
type VccType uint8

// Supported supply configurations.
const (
	ExternalVCC  VccType = 0x1 // high voltage supplied externally
	SwitchCapVCC VccType = 0x2 // high voltage generated by the internal charge pump
)

func (v VccType) String() string {
	if v == ExternalVCC {
		return "external"
	}
	return "switchcap"
}

// ParseVccType parses "external" or "switchcap" (alias "internal").
func ParseVccType(s string) (VccType, error) {
	switch s {
	case "external", "ext":
		return ExternalVCC, nil
	case "", "switchcap", "internal", "int":
		return SwitchCapVCC, nil
	default:
		return 0, fmt.Errorf("ssd1306: invalid VCC type %q", s)
	}
}

// initSequence returns the power-up commands and their parameters in the
// order mandated by the controller datasheet. The first value of each pair
// is used with an external supply, the second with the charge pump.
func initSequence(vcc VccType) [][]byte {
	pick := func(external, switchCap byte) byte {
		if vcc == ExternalVCC {
			return external
		}
		return switchCap
	}
	return [][]byte{
		{byte(SetDisplayOff)},
		{byte(SetLowColumn | 0x0)},
		{byte(SetHighColumn | 0x0)},
		{byte(SetStartLine | 0x0)},
		{byte(SetContrast), pick(0x9F, 0xCF)},
		{0xA1}, // segment remap, column 127 mapped to SEG0
		{byte(SetNormalDisplay)},
		{byte(SetDisplayAllOnResume)},
		{byte(SetMultiplexRatio), 0x3F}, // 1/64 duty
		{byte(SetDisplayOffset), 0x00},
		{byte(SetDisplayClockDiv), 0x80},
		{byte(SetPrecharge), pick(0x22, 0xF1)},
		{byte(SetComPins), 0x12},
		{byte(SetVComDetect), 0x40},
		{byte(SetMemoryMode), 0x00}, // horizontal addressing
		{byte(SetSegmentRemap | 0x1)},
		{byte(SetComScanDec)},
		{byte(SetChargePump), pick(0x10, 0x14)},
		{byte(SetDisplayOn)},
	}
}
