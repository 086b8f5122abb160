package display

import (
	"fmt"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// DefaultAddress is the usual I2C address of 128x64 SH1106/SSD1306 modules.
const DefaultAddress = 0x3C

// SH1106 control bytes and commands.
const (
	sh1106Command = 0x00
	sh1106Data    = 0x40

	cmdDisplayOff   = 0xAE
	cmdDisplayOn    = 0xAF
	cmdSegNormal    = 0xA0
	cmdSegRemap     = 0xA1
	cmdComScanInc   = 0xC0
	cmdComScanDec   = 0xC8
	cmdPageAddr     = 0xB0
	cmdColLow       = 0x00
	cmdColHigh      = 0x10
	sh1106ColOffset = 2 // 128 visible columns centred in 132 of RAM
)

var sh1106Init = []byte{
	cmdDisplayOff,
	0xD5, 0x80, // clock divide
	0xA8, 0x3F, // multiplex 64
	0xD3, 0x00, // display offset
	0x40,       // start line 0
	0xAD, 0x8B, // DC-DC on
	cmdSegRemap,
	cmdComScanDec,
	0xDA, 0x12, // COM pins
	0x81, 0x80, // contrast
	0xD9, 0x1F, // pre-charge
	0xDB, 0x40, // VCOM deselect
	0xA4, // resume from RAM
	0xA6, // normal, not inverted colours
	cmdDisplayOn,
}

// SH1106 is a Controller for SH1106 panels on a drivers.I2C bus.
type SH1106 struct {
	bus  drivers.I2C
	addr uint16
	buf  []byte
}

// NewSH1106 creates a controller at addr on bus.
func NewSH1106(bus drivers.I2C, addr uint16) *SH1106 {
	return &SH1106{bus: bus, addr: addr, buf: make([]byte, Width+1)}
}

func (s *SH1106) command(cmds ...byte) error {
	w := append([]byte{sh1106Command}, cmds...)
	return s.bus.Tx(s.addr, w, nil)
}

// Init sends the power-up sequence.
func (s *SH1106) Init() error {
	if err := s.command(sh1106Init...); err != nil {
		return fmt.Errorf("sh1106 init: %w", err)
	}
	return nil
}

// Flush writes the frame page by page.
func (s *SH1106) Flush(frame *image1bit.VerticalLSB) error {
	for page := 0; page < Lines; page++ {
		if err := s.command(cmdPageAddr|byte(page), cmdColLow|sh1106ColOffset, cmdColHigh); err != nil {
			return fmt.Errorf("sh1106 page %d: %w", page, err)
		}
		s.buf[0] = sh1106Data
		copy(s.buf[1:], frame.Pix[page*frame.Stride:page*frame.Stride+Width])
		if err := s.bus.Tx(s.addr, s.buf, nil); err != nil {
			return fmt.Errorf("sh1106 page %d data: %w", page, err)
		}
	}
	return nil
}

// SetReversed flips both segment and COM scan direction.
func (s *SH1106) SetReversed(reversed bool) error {
	seg, com := byte(cmdSegRemap), byte(cmdComScanDec)
	if reversed {
		seg, com = cmdSegNormal, cmdComScanInc
	}
	if err := s.command(seg, com); err != nil {
		return fmt.Errorf("sh1106 reverse: %w", err)
	}
	return nil
}

// Close turns the panel off.
func (s *SH1106) Close() error {
	return s.command(cmdDisplayOff)
}
