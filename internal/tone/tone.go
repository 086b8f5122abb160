// Package tone drives the audible feedback actuator.
package tone

import (
	"log"
	"sync"

	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
)

// Emitter emits a fixed tone pattern. Emit blocks until the tone has finished.
type Emitter interface {
	Emit() error
}

// Trigger starts one-shot tone goroutines, at most one at a time.
// The in-flight guard lives in the shared state so it is observable
// by anything holding the state.
type Trigger struct {
	state   *state.State
	emitter Emitter
	tracker *status.Tracker
	wg      sync.WaitGroup
}

// NewTrigger creates a Trigger. tracker may be nil.
func NewTrigger(st *state.State, emitter Emitter, tracker *status.Tracker) *Trigger {
	return &Trigger{state: st, emitter: emitter, tracker: tracker}
}

// Fire starts a tone unless one is already sounding. It never blocks.
// Returns whether a tone was started.
func (t *Trigger) Fire() bool {
	if !t.state.ClaimTone() {
		t.tracker.ToneSuppressed()
		return false
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.state.ReleaseTone()

		if err := t.emitter.Emit(); err != nil {
			log.Printf("tone: emit error: %v", err)
			return
		}
		t.tracker.ToneEmitted()
	}()
	return true
}

// Wait blocks until the in-flight tone, if any, has finished.
func (t *Trigger) Wait() {
	t.wg.Wait()
}
