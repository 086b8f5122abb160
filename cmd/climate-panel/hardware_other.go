//go:build !linux && !tinygo

package main

import (
	"errors"

	"github.com/sweeney/climate-panel/internal/gpio"
)

func openHardware(cfg config, notify gpio.Notify) (*hardware, error) {
	return nil, errors.New("real hardware requires Linux; use -sim")
}
