package display

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
)

// StatusLine is the text line the status is drawn on.
const StatusLine = 3

// FormatStatus formats the status line for a screen and its reading.
func FormatStatus(sc logic.Screen, value int) string {
	if sc == logic.ScreenTemperature {
		return fmt.Sprintf("temperature: %d C", value)
	}
	return fmt.Sprintf("humidity: %d %%", value)
}

// Renderer owns the display lock and draws frames from the shared state.
type Renderer struct {
	mu      sync.Mutex
	drv     Driver
	state   *state.State
	tracker *status.Tracker
}

// NewRenderer creates a Renderer. tracker may be nil.
func NewRenderer(drv Driver, st *state.State, tracker *status.Tracker) *Renderer {
	return &Renderer{drv: drv, state: st, tracker: tracker}
}

// Init initializes the display driver.
func (r *Renderer) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drv.Init()
}

// WaitPage shows the startup placeholder while the sensor initializes.
func (r *Renderer) WaitPage() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drv.Clear()
	r.drv.DrawTextLine("Wait...", StatusLine)
	return r.drv.Update()
}

// Frame draws one frame. The lock is held for the whole frame and released
// on every return path.
func (r *Renderer) Frame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drv.Clear()

	if inverted, ok := r.state.ConsumeRefresh(); ok {
		if err := r.drv.SetReversed(inverted); err != nil {
			r.state.RetryRefresh()
			return fmt.Errorf("set reversed: %w", err)
		}
	}

	sc := r.state.Screen()
	value := r.state.Reading(sc.Quantity())
	r.drv.DrawTextLine(FormatStatus(sc, value), StatusLine)

	if err := r.drv.Update(); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	r.tracker.UpdateUI(status.UI{
		Screen:      sc,
		Temperature: r.state.Reading(logic.QuantityTemperature),
		Humidity:    r.state.Reading(logic.QuantityHumidity),
		Inverted:    r.state.Inverted(),
	})
	return nil
}

// Blank clears the panel, used on shutdown.
func (r *Renderer) Blank() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drv.Clear()
	return r.drv.Update()
}

// Run draws a frame on every tick until ctx is cancelled. The first frame
// is drawn on the first tick, not immediately.
func (r *Renderer) Run(ctx context.Context, tick <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			err := r.Frame()
			r.tracker.Frame(err)
			if err != nil {
				log.Printf("display: frame error: %v", err)
			}
		}
	}
}
