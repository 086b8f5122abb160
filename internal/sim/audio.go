//go:build !tinygo && cgo

package sim

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/sweeney/climate-panel/internal/tone"
)

// Beeper is a tone.Emitter playing a square wave through the desktop
// audio device.
type Beeper struct {
	ctx *audio.Context
	pcm []byte
	dur time.Duration
}

// NewBeeper prepares pattern for playback. Only one audio context may exist
// per process, so create one Beeper.
func NewBeeper(pattern []tone.Step) *Beeper {
	if len(pattern) == 0 {
		pattern = tone.DefaultPattern
	}
	var dur time.Duration
	for _, s := range pattern {
		dur += s.On + s.Off
	}
	return &Beeper{
		ctx: audio.NewContext(SampleRate),
		pcm: SquareWave(SampleRate, ToneFrequency, pattern),
		dur: dur,
	}
}

// Emit plays the pattern and returns once it has finished.
func (b *Beeper) Emit() error {
	p := b.ctx.NewPlayerFromBytes(b.pcm)
	p.Play()
	time.Sleep(b.dur)
	if err := p.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	return nil
}
