// Package logic contains the pure UI state machine of the panel.
// This package has NO external dependencies (no GPIO, I2C, OS, or time.Sleep).
package logic

import "fmt"

// Screen selects which quantity the panel displays. Exactly one is active.
type Screen int32

const (
	ScreenHumidity Screen = iota
	ScreenTemperature
)

func (s Screen) String() string {
	switch s {
	case ScreenHumidity:
		return "HUMIDITY"
	case ScreenTemperature:
		return "TEMPERATURE"
	}
	return fmt.Sprintf("Screen(%d)", int32(s))
}

// Valid reports whether s is one of the two defined screens.
func (s Screen) Valid() bool {
	return s == ScreenHumidity || s == ScreenTemperature
}

// Quantity returns the measured quantity shown on the screen.
func (s Screen) Quantity() Quantity {
	if s == ScreenTemperature {
		return QuantityTemperature
	}
	return QuantityHumidity
}

// ButtonID identifies one of the two push-buttons.
type ButtonID uint8

const (
	ButtonNext ButtonID = iota + 1
	ButtonPrevious
)

func (b ButtonID) String() string {
	switch b {
	case ButtonNext:
		return "NEXT"
	case ButtonPrevious:
		return "PREVIOUS"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ButtonEvent is carried on the event queue from interrupt context to the router.
type ButtonEvent struct {
	Source ButtonID
}

// Quantity is a value the humidity/temperature sensor can measure.
type Quantity uint8

const (
	QuantityHumidity Quantity = iota
	QuantityTemperature
)

func (q Quantity) String() string {
	if q == QuantityTemperature {
		return "temperature"
	}
	return "humidity"
}
