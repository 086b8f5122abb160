//go:build tinygo || !cgo

package sim

import (
	"context"
	"errors"

	"github.com/sweeney/climate-panel/internal/tone"
)

var errNoWindow = errors.New("sim: simulator requires cgo")

// Run returns an error when built without cgo.
func Run(ctx context.Context, board *Board) error {
	return errNoWindow
}

// Beeper is silent when built without cgo.
type Beeper struct{}

// NewBeeper returns a silent Beeper.
func NewBeeper(pattern []tone.Step) *Beeper {
	return &Beeper{}
}

// Emit reports that no audio device is available.
func (b *Beeper) Emit() error {
	return errNoWindow
}
