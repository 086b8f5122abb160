// Package gpio wires the panel's buttons, power-enable lines and buzzer to
// GPIO. The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

import "github.com/sweeney/climate-panel/internal/logic"

// Pins holds the line offsets used by the panel.
type Pins struct {
	Next        int
	Previous    int
	Buzzer      int
	OLEDEnable  int
	AmpEnable   int
	AccelEnable int
}

// DefaultPins matches the reference board wiring.
var DefaultPins = Pins{
	Next:        39,
	Previous:    18,
	Buzzer:      25,
	OLEDEnable:  32,
	AmpEnable:   5,
	AccelEnable: 23,
}

// Enables returns the power-enable offsets in the order they are raised.
func (p Pins) Enables() []int {
	return []int{p.OLEDEnable, p.AmpEnable, p.AccelEnable}
}

// ButtonFor maps a line offset to the button wired to it.
// It returns false for offsets that carry no button.
func (p Pins) ButtonFor(offset int) (logic.ButtonID, bool) {
	switch offset {
	case p.Next:
		return logic.ButtonNext, true
	case p.Previous:
		return logic.ButtonPrevious, true
	}
	return 0, false
}

// Notify is called from edge-event context with the pressed button.
// It must not block, log or allocate.
type Notify func(id logic.ButtonID) bool

// ButtonLines is an edge-event source for both buttons whose delivery can be
// masked while an event is processed.
type ButtonLines interface {
	// Disable stops edge delivery on both button lines.
	Disable() error

	// Enable resumes edge delivery on both button lines.
	Enable() error

	// Close releases the lines.
	Close() error
}

// OutputLine is a single output line.
type OutputLine interface {
	SetValue(v int) error
	Close() error
}
