//go:build !linux

package gpio

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// Chip is not available on non-Linux platforms.
type Chip struct{}

// Open returns an error on non-Linux platforms.
func Open(name string) (*Chip, error) {
	return nil, errUnsupported
}

// Close is a no-op on non-Linux platforms.
func (c *Chip) Close() error { return nil }

// Enables is not available on non-Linux platforms.
type Enables struct{}

// RaiseEnables returns an error on non-Linux platforms.
func (c *Chip) RaiseEnables(offsets []int) (*Enables, error) {
	return nil, errUnsupported
}

// Close is a no-op on non-Linux platforms.
func (e *Enables) Close() error { return nil }

// Buttons is not available on non-Linux platforms.
type Buttons struct{}

// WatchButtons returns an error on non-Linux platforms.
func (c *Chip) WatchButtons(pins Pins, debounce time.Duration, notify Notify) (*Buttons, error) {
	return nil, errUnsupported
}

// Disable is not implemented on non-Linux platforms.
func (b *Buttons) Disable() error { return errUnsupported }

// Enable is not implemented on non-Linux platforms.
func (b *Buttons) Enable() error { return errUnsupported }

// Close is a no-op on non-Linux platforms.
func (b *Buttons) Close() error { return nil }

// Output is not available on non-Linux platforms.
type Output struct{}

// RequestOutput returns an error on non-Linux platforms.
func (c *Chip) RequestOutput(offset int) (*Output, error) {
	return nil, errUnsupported
}

// SetValue is not implemented on non-Linux platforms.
func (o *Output) SetValue(v int) error { return errUnsupported }

// Close is a no-op on non-Linux platforms.
func (o *Output) Close() error { return nil }
