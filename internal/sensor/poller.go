package sensor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
)

// Init takes the first reading of both quantities before polling starts.
// Each attempt reads temperature then humidity; any failure uses up one
// attempt and the next attempt starts over from temperature. After
// InitAttempts failures it gives up and returns ErrInitIncomplete, leaving
// whatever was obtained in st.
func Init(r Reader, st *state.State) error {
	for attempt := 0; attempt < InitAttempts; {
		t, err := r.Read(logic.QuantityTemperature)
		if err != nil {
			attempt++
			continue
		}
		st.SetReading(logic.QuantityTemperature, t)

		h, err := r.Read(logic.QuantityHumidity)
		if err != nil {
			attempt++
			continue
		}
		st.SetReading(logic.QuantityHumidity, h)
		return nil
	}
	return fmt.Errorf("%w after %d attempts", ErrInitIncomplete, InitAttempts)
}

// Poller refreshes the quantity shown on the active screen.
type Poller struct {
	reader  Reader
	state   *state.State
	tracker *status.Tracker
}

// NewPoller creates a Poller. tracker may be nil.
func NewPoller(r Reader, st *state.State, tracker *status.Tracker) *Poller {
	return &Poller{reader: r, state: st, tracker: tracker}
}

// Poll reads the quantity of the active screen once. A failed read leaves
// the snapshot untouched.
func (p *Poller) Poll() error {
	q := p.state.Screen().Quantity()
	v, err := p.reader.Read(q)
	if err != nil {
		p.tracker.SensorFailure()
		return err
	}
	p.state.SetReading(q, v)
	return nil
}

// Run polls on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, tick <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			if err := p.Poll(); err != nil && !errors.Is(err, ErrReadFailed) {
				log.Printf("sensor: %v", err)
			}
		}
	}
}
