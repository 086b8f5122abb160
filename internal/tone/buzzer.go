package tone

import (
	"fmt"
	"time"
)

// Output is a digital output line driving an active buzzer.
// *gpiocdev.Line satisfies it.
type Output interface {
	SetValue(value int) error
}

// Step is one segment of a tone pattern.
type Step struct {
	On  time.Duration
	Off time.Duration
}

// DefaultPattern is a single short beep.
var DefaultPattern = []Step{{On: 80 * time.Millisecond, Off: 20 * time.Millisecond}}

// Buzzer emits a pattern by switching an active buzzer on and off.
type Buzzer struct {
	out     Output
	pattern []Step
	sleep   func(time.Duration)
}

// NewBuzzer creates a Buzzer on out. A nil pattern selects DefaultPattern.
func NewBuzzer(out Output, pattern []Step) *Buzzer {
	if len(pattern) == 0 {
		pattern = DefaultPattern
	}
	return &Buzzer{out: out, pattern: pattern, sleep: time.Sleep}
}

// Emit plays the pattern. The buzzer is always left off, even on error.
func (b *Buzzer) Emit() (err error) {
	defer func() {
		if offErr := b.out.SetValue(0); offErr != nil && err == nil {
			err = fmt.Errorf("buzzer off: %w", offErr)
		}
	}()

	for _, s := range b.pattern {
		if err := b.out.SetValue(1); err != nil {
			return fmt.Errorf("buzzer on: %w", err)
		}
		b.sleep(s.On)
		if err := b.out.SetValue(0); err != nil {
			return fmt.Errorf("buzzer off: %w", err)
		}
		b.sleep(s.Off)
	}
	return nil
}

// Duration returns the total time one Emit takes.
func (b *Buzzer) Duration() time.Duration {
	var d time.Duration
	for _, s := range b.pattern {
		d += s.On + s.Off
	}
	return d
}
