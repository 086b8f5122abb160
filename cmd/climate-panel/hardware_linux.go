//go:build linux && !tinygo

package main

import (
	"fmt"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/gpio"
	"github.com/sweeney/climate-panel/internal/orientation"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/tone"
)

// openHardware powers the peripherals and opens every device. The enable
// lines are raised first; the buttons are watched last so no edge arrives
// before the rest of the set exists.
func openHardware(cfg config, notify gpio.Notify) (_ *hardware, err error) {
	hw := &hardware{}
	defer func() {
		if err != nil {
			hw.Close()
		}
	}()

	chip, err := gpio.Open(cfg.chip)
	if err != nil {
		return nil, err
	}
	hw.add(chip)

	enables, err := chip.RaiseEnables(cfg.pins.Enables())
	if err != nil {
		return nil, err
	}
	hw.add(enables)

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(cfg.i2c)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", cfg.i2c, err)
	}
	hw.add(bus)

	var ctrl display.Controller
	switch cfg.controller {
	case "ssd1306":
		c := display.NewSSD1306(bus)
		hw.add(c)
		ctrl = c
	default:
		c := display.NewSH1106(bus, uint16(cfg.oledAddr))
		hw.add(c)
		ctrl = c
	}
	hw.display = display.NewCanvas(ctrl)

	accel := orientation.NewADXL345Reader(bus, uint16(cfg.accelAddr))
	hw.add(accel)
	hw.accel = accel

	climate, err := sensor.NewIIOReader(cfg.iio)
	if err != nil {
		return nil, err
	}
	hw.sensor = climate

	out, err := chip.RequestOutput(cfg.pins.Buzzer)
	if err != nil {
		return nil, err
	}
	hw.add(out)
	hw.emitter = tone.NewBuzzer(out, nil)

	buttons, err := chip.WatchButtons(cfg.pins, cfg.debounce, notify)
	if err != nil {
		return nil, err
	}
	hw.add(buttons)
	hw.irq = buttons

	return hw, nil
}
