package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/orientation"
	"github.com/sweeney/climate-panel/internal/router"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
	"github.com/sweeney/climate-panel/internal/tone"
)

// hardware is one complete device set.
type hardware struct {
	sensor  sensor.Reader
	accel   orientation.Reader
	display display.Driver
	emitter tone.Emitter
	irq     router.Interrupts

	closers []io.Closer
}

func (h *hardware) add(c io.Closer) {
	h.closers = append(h.closers, c)
}

// Close releases everything in reverse order of acquisition.
func (h *hardware) Close() error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	h.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// ticks drives the periodic tasks. A nil channel disables its task's work.
type ticks struct {
	poll      <-chan time.Time
	tilt      <-chan time.Time
	render    <-chan time.Time
	heartbeat <-chan time.Time
}

// panel is the running application wired onto one hardware set.
type panel struct {
	hw       *hardware
	state    *state.State
	queue    *router.Queue
	tracker  *status.Tracker
	trigger  *tone.Trigger
	router   *router.Router
	renderer *display.Renderer
	climate  *sensor.Poller
	tilt     *orientation.Poller
}

func newPanel(hw *hardware, q *router.Queue, threshold int16, tracker *status.Tracker) *panel {
	st := state.New()
	trig := tone.NewTrigger(st, hw.emitter, tracker)
	tracker.SetDropCounter(q.Dropped)
	return &panel{
		hw:       hw,
		state:    st,
		queue:    q,
		tracker:  tracker,
		trigger:  trig,
		router:   router.New(st, hw.irq, trig, tracker),
		renderer: display.NewRenderer(hw.display, st, tracker),
		climate:  sensor.NewPoller(hw.sensor, st, tracker),
		tilt:     orientation.NewPoller(hw.accel, st, threshold, tracker),
	}
}

// startup brings up the display and takes the first sensor readings.
// Only a display failure is fatal.
func (p *panel) startup() error {
	if err := p.renderer.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	if err := p.renderer.WaitPage(); err != nil {
		log.Printf("display: wait page: %v", err)
	}
	if err := sensor.Init(p.hw.sensor, p.state); err != nil {
		log.Printf("%v", err)
	}
	return nil
}

// run starts the router, pollers and renderer and logs heartbeats until
// ctx is cancelled. It returns once every task has stopped.
func (p *panel) run(ctx context.Context, t ticks) error {
	var wg sync.WaitGroup
	tasks := []func() error{
		func() error { return p.router.Run(ctx, p.queue.Events()) },
		func() error { return p.climate.Run(ctx, t.poll) },
		func() error { return p.tilt.Run(ctx, t.tilt) },
		func() error { return p.renderer.Run(ctx, t.render) },
	}
	for _, task := range tasks {
		wg.Add(1)
		go func(task func() error) {
			defer wg.Done()
			if err := task(); err != nil {
				log.Printf("task error: %v", err)
			}
		}(task)
	}

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			p.trigger.Wait()
			if err := p.renderer.Blank(); err != nil {
				log.Printf("display: blank on shutdown: %v", err)
			}
			return nil
		case <-t.heartbeat:
			log.Printf("heartbeat: %s", status.FormatStatusEvent(p.snapshot(), "HEARTBEAT"))
		}
	}
}

// snapshot refreshes the tracker's UI view from the shared state.
func (p *panel) snapshot() status.Snapshot {
	s := p.state.Snapshot()
	p.tracker.UpdateUI(status.UI{
		Screen:      s.Screen,
		Temperature: s.Temperature,
		Humidity:    s.Humidity,
		Inverted:    s.Inverted,
	})
	return p.tracker.Snapshot()
}

// printState takes the startup readings and one orientation sample and
// returns the status JSON.
func (p *panel) printState() ([]byte, error) {
	if err := sensor.Init(p.hw.sensor, p.state); err != nil {
		return nil, err
	}
	if _, err := p.tilt.Poll(); err != nil {
		return nil, fmt.Errorf("read orientation: %w", err)
	}
	return status.FormatJSON(p.snapshot()), nil
}
