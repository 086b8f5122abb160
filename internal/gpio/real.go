//go:build linux

package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Chip is an open GPIO character device.
type Chip struct {
	chip *gpiocdev.Chip
}

// Open opens the named GPIO chip, e.g. "gpiochip0".
func Open(name string) (*Chip, error) {
	chip, err := gpiocdev.NewChip(name)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}
	return &Chip{chip: chip}, nil
}

// Close releases the chip. Lines requested from it stay valid until they
// are closed themselves.
func (c *Chip) Close() error {
	return c.chip.Close()
}

// Enables holds power-enable outputs driven high.
type Enables struct {
	lines *gpiocdev.Lines
}

// RaiseEnables requests offsets as outputs driven high.
func (c *Chip) RaiseEnables(offsets []int) (*Enables, error) {
	high := make([]int, len(offsets))
	for i := range high {
		high[i] = 1
	}
	lines, err := c.chip.RequestLines(offsets, gpiocdev.AsOutput(high...), gpiocdev.WithConsumer("climate-panel"))
	if err != nil {
		return nil, fmt.Errorf("request enable lines %v: %w", offsets, err)
	}
	return &Enables{lines: lines}, nil
}

// Close releases the enable lines. They are returned to inputs with
// pull-down so the peripherals power off.
func (e *Enables) Close() error {
	var errs []error
	if err := e.lines.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure enable lines: %w", err))
	}
	if err := e.lines.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close enable lines: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// Buttons watches both button lines for rising edges.
type Buttons struct {
	lines *gpiocdev.Lines
}

// WatchButtons requests the Next and Previous lines with rising-edge
// detection and kernel debounce. Every edge is handed to notify with the
// button identified by the line offset.
func (c *Chip) WatchButtons(pins Pins, debounce time.Duration, notify Notify) (*Buttons, error) {
	handler := func(evt gpiocdev.LineEvent) {
		if id, ok := pins.ButtonFor(evt.Offset); ok {
			notify(id)
		}
	}
	opts := []gpiocdev.LineReqOption{
		gpiocdev.WithConsumer("climate-panel"),
		gpiocdev.WithPullDown,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(handler),
	}
	if debounce > 0 {
		opts = append(opts, gpiocdev.WithDebounce(debounce))
	}
	lines, err := c.chip.RequestLines([]int{pins.Next, pins.Previous}, opts...)
	if err != nil {
		return nil, fmt.Errorf("request button lines %d,%d: %w", pins.Next, pins.Previous, err)
	}
	return &Buttons{lines: lines}, nil
}

// Disable turns off edge detection on both lines.
func (b *Buttons) Disable() error {
	if err := b.lines.Reconfigure(gpiocdev.WithoutEdges); err != nil {
		return fmt.Errorf("mask buttons: %w", err)
	}
	return nil
}

// Enable turns rising-edge detection back on.
func (b *Buttons) Enable() error {
	if err := b.lines.Reconfigure(gpiocdev.WithRisingEdge); err != nil {
		return fmt.Errorf("unmask buttons: %w", err)
	}
	return nil
}

// Close stops edge watching and releases the lines.
func (b *Buttons) Close() error {
	var errs []error
	if err := b.lines.Reconfigure(gpiocdev.WithoutEdges); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure button lines: %w", err))
	}
	if err := b.lines.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close button lines: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// Output is a single output line, used for the buzzer.
type Output struct {
	line *gpiocdev.Line
}

// RequestOutput requests offset as an output driven low.
func (c *Chip) RequestOutput(offset int) (*Output, error) {
	line, err := c.chip.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("climate-panel"))
	if err != nil {
		return nil, fmt.Errorf("request output %d: %w", offset, err)
	}
	return &Output{line: line}, nil
}

// SetValue drives the line.
func (o *Output) SetValue(v int) error {
	return o.line.SetValue(v)
}

// Close drives the line low and releases it.
func (o *Output) Close() error {
	var errs []error
	if err := o.line.SetValue(0); err != nil {
		errs = append(errs, fmt.Errorf("drive output low: %w", err))
	}
	if err := o.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close output: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
