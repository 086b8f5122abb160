// Package router turns button interrupts into screen changes and tones.
package router

import (
	"context"
	"log"

	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
)

// Interrupts masks and unmasks edge delivery for both buttons.
type Interrupts interface {
	Disable() error
	Enable() error
}

// ToneTrigger starts a one-shot tone unless one is already sounding.
type ToneTrigger interface {
	Fire() bool
}

// Router is the sole consumer of the event queue.
type Router struct {
	state   *state.State
	irq     Interrupts
	tone    ToneTrigger
	tracker *status.Tracker
}

// New creates a Router. tracker may be nil.
func New(st *state.State, irq Interrupts, tone ToneTrigger, tracker *status.Tracker) *Router {
	return &Router{state: st, irq: irq, tone: tone, tracker: tracker}
}

// Run handles events in FIFO order until ctx is cancelled.
func (r *Router) Run(ctx context.Context, events <-chan logic.ButtonEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			r.Handle(ev)
		}
	}
}

// Handle processes one event with button interrupts masked.
func (r *Router) Handle(ev logic.ButtonEvent) {
	if err := r.irq.Disable(); err != nil {
		log.Printf("router: disable interrupts: %v", err)
	}
	defer func() {
		if err := r.irq.Enable(); err != nil {
			log.Printf("router: enable interrupts: %v", err)
		}
	}()

	r.tracker.ButtonEvent()

	if ev.Source != logic.ButtonNext && ev.Source != logic.ButtonPrevious {
		log.Printf("router: ignoring event from unknown button %s", ev.Source)
		return
	}

	if next, changed := logic.NextScreen(r.state.Screen(), ev.Source); changed {
		r.state.SetScreen(next)
		r.tracker.ScreenChange()
	}

	r.tone.Fire()
}
