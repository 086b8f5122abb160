//go:build !tinygo

package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// SSD1306 is a Controller for SSD1306 panels using the periph.io driver at
// its default address (DefaultAddress). The driver only supports rotation
// at init time, so reversing re-opens it.
type SSD1306 struct {
	bus  i2c.Bus
	dev  *ssd1306.Dev
	opts ssd1306.Opts
}

// NewSSD1306 creates a controller on bus. Nothing is sent until Init.
func NewSSD1306(bus i2c.Bus) *SSD1306 {
	opts := ssd1306.DefaultOpts
	opts.W = Width
	opts.H = Height
	return &SSD1306{bus: bus, opts: opts}
}

func (s *SSD1306) open() error {
	dev, err := ssd1306.NewI2C(s.bus, &s.opts)
	if err != nil {
		return fmt.Errorf("ssd1306 open: %w", err)
	}
	s.dev = dev
	return nil
}

// Init opens the device with the current rotation.
func (s *SSD1306) Init() error {
	return s.open()
}

// Flush draws the whole frame.
func (s *SSD1306) Flush(frame *image1bit.VerticalLSB) error {
	if s.dev == nil {
		return fmt.Errorf("ssd1306: not initialized")
	}
	if err := s.dev.Draw(frame.Bounds(), frame, image.Point{}); err != nil {
		return fmt.Errorf("ssd1306 draw: %w", err)
	}
	return nil
}

// SetReversed re-opens the device with the requested rotation.
func (s *SSD1306) SetReversed(reversed bool) error {
	if s.opts.Rotated == reversed && s.dev != nil {
		return nil
	}
	s.opts.Rotated = reversed
	return s.open()
}

// Close halts the panel.
func (s *SSD1306) Close() error {
	if s.dev == nil {
		return nil
	}
	return s.dev.Halt()
}
