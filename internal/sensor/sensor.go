// Package sensor reads the humidity/temperature sensor and keeps the
// shared snapshot up to date with the last known good values.
package sensor

import (
	"errors"

	"github.com/sweeney/climate-panel/internal/logic"
)

// ErrReadFailed is returned by a Reader when a sample could not be taken
// (no response, checksum mismatch). Callers keep the previous value.
var ErrReadFailed = errors.New("sensor: read failed")

// ErrInitIncomplete is returned by Init when both quantities could not be
// obtained within InitAttempts attempts.
var ErrInitIncomplete = errors.New("sensor: init incomplete")

// InitAttempts bounds the startup read loop.
const InitAttempts = 5

// Reader samples one quantity synchronously. Implementations do not retry.
type Reader interface {
	Read(q logic.Quantity) (int, error)
}
