// Package orientation samples the accelerometer and publishes the panel's
// upright/inverted classification into the shared state.
package orientation

import (
	"context"
	"log"
	"time"

	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/status"
)

// Reader samples 3-axis acceleration synchronously.
type Reader interface {
	ReadAcceleration() (logic.Acceleration, error)
}

// Poller classifies samples and raises the display refresh flag on change.
type Poller struct {
	reader     Reader
	state      *state.State
	classifier *logic.Classifier
	tracker    *status.Tracker
}

// NewPoller creates a Poller that inverts at or above threshold on the Y axis.
// tracker may be nil.
func NewPoller(r Reader, st *state.State, threshold int16, tracker *status.Tracker) *Poller {
	return &Poller{
		reader:     r,
		state:      st,
		classifier: logic.NewClassifier(threshold),
		tracker:    tracker,
	}
}

// Poll takes one sample. It returns whether the classification changed.
func (p *Poller) Poll() (bool, error) {
	a, err := p.reader.ReadAcceleration()
	if err != nil {
		return false, err
	}
	inverted, _ := p.classifier.Process(a)
	changed := p.state.PublishOrientation(inverted)
	if changed {
		p.tracker.OrientationFlip()
	}
	return changed, nil
}

// Run polls on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, tick <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			changed, err := p.Poll()
			if err != nil {
				log.Printf("orientation: read error: %v", err)
				continue
			}
			if changed {
				log.Printf("orientation: inverted=%v", p.state.Inverted())
			}
		}
	}
}
