// Package state holds the UI state shared between the router, the pollers
// and the renderer.
//
// Every field is an independent atomic value. There is no atomicity across
// fields: a reader may observe a new temperature together with an old
// humidity, which is harmless because each is written by its own read.
package state

import (
	"sync/atomic"

	"github.com/sweeney/climate-panel/internal/logic"
)

// State is the shared UI context. The zero value is ready to use and shows
// the humidity screen, upright, with zero readings.
type State struct {
	screen      atomic.Int32
	temperature atomic.Int32
	humidity    atomic.Int32

	inverted       atomic.Bool
	pendingRefresh atomic.Bool

	toneInFlight atomic.Bool
}

// New returns a State showing the humidity screen.
func New() *State {
	return &State{}
}

// Screen returns the active screen.
func (s *State) Screen() logic.Screen {
	return logic.Screen(s.screen.Load())
}

// SetScreen selects the active screen. Only the router calls it.
func (s *State) SetScreen(sc logic.Screen) {
	if !sc.Valid() {
		return
	}
	s.screen.Store(int32(sc))
}

// Reading returns the last known good value of q.
func (s *State) Reading(q logic.Quantity) int {
	if q == logic.QuantityTemperature {
		return int(s.temperature.Load())
	}
	return int(s.humidity.Load())
}

// SetReading publishes a successful read of q.
func (s *State) SetReading(q logic.Quantity, v int) {
	if q == logic.QuantityTemperature {
		s.temperature.Store(int32(v))
		return
	}
	s.humidity.Store(int32(v))
}

// PublishOrientation records the latest tilt classification. When it
// differs from the stored one the pending refresh flag is raised, so each
// change is handed to the renderer exactly once.
func (s *State) PublishOrientation(inverted bool) (changed bool) {
	if s.inverted.Swap(inverted) == inverted {
		return false
	}
	s.pendingRefresh.Store(true)
	return true
}

// Inverted returns the last tilt classification.
func (s *State) Inverted() bool {
	return s.inverted.Load()
}

// PendingRefresh reports whether an orientation change awaits the renderer.
func (s *State) PendingRefresh() bool {
	return s.pendingRefresh.Load()
}

// ConsumeRefresh clears the pending refresh flag. It returns true and the
// orientation to apply only for the caller that actually cleared it.
func (s *State) ConsumeRefresh() (inverted bool, ok bool) {
	if !s.pendingRefresh.CompareAndSwap(true, false) {
		return false, false
	}
	return s.inverted.Load(), true
}

// RetryRefresh raises the refresh flag again after the renderer failed to
// apply a consumed change.
func (s *State) RetryRefresh() {
	s.pendingRefresh.Store(true)
}

// ClaimTone marks a tone as in flight. It returns false if one already is.
func (s *State) ClaimTone() bool {
	return s.toneInFlight.CompareAndSwap(false, true)
}

// ReleaseTone marks the in-flight tone as finished.
func (s *State) ReleaseTone() {
	s.toneInFlight.Store(false)
}

// ToneInFlight reports whether a tone is currently sounding.
func (s *State) ToneInFlight() bool {
	return s.toneInFlight.Load()
}

// Snapshot is a point-in-time view of the shared state.
// It is a value type, safe to use after the read.
type Snapshot struct {
	Screen         logic.Screen
	Temperature    int
	Humidity       int
	Inverted       bool
	PendingRefresh bool
	ToneInFlight   bool
}

// Snapshot returns a copy of every field. Fields are loaded one at a time.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Screen:         s.Screen(),
		Temperature:    int(s.temperature.Load()),
		Humidity:       int(s.humidity.Load()),
		Inverted:       s.inverted.Load(),
		PendingRefresh: s.pendingRefresh.Load(),
		ToneInFlight:   s.toneInFlight.Load(),
	}
}
