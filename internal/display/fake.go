package display

import (
	"strings"
	"sync"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// FakeDriver records display operations for test assertions.
type FakeDriver struct {
	mu sync.Mutex

	// Ops holds the operations in call order, e.g. "clear", "draw:3:humidity: 0 %".
	Ops []string

	// Lines holds the text drawn since the last Clear, by line index.
	Lines map[int]string

	// Committed holds the Lines snapshot taken at each Update.
	Committed []map[int]string

	// Reversed is the last value passed to SetReversed.
	Reversed bool

	// ReverseCalls counts SetReversed calls.
	ReverseCalls int

	// UpdateError, if set, is returned by Update.
	UpdateError error

	// ReverseError, if set, is returned by SetReversed.
	ReverseError error
}

// NewFakeDriver creates a FakeDriver.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{Lines: map[int]string{}}
}

func (f *FakeDriver) record(op string) {
	f.Ops = append(f.Ops, op)
}

// Init records an init.
func (f *FakeDriver) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("init")
	return nil
}

// Clear records a clear and forgets drawn lines.
func (f *FakeDriver) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("clear")
	f.Lines = map[int]string{}
}

// DrawTextLine records the text.
func (f *FakeDriver) DrawTextLine(text string, line int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("draw")
	f.Lines[line] = text
}

// Update commits the drawn lines.
func (f *FakeDriver) Update() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")
	if f.UpdateError != nil {
		return f.UpdateError
	}
	frame := make(map[int]string, len(f.Lines))
	for k, v := range f.Lines {
		frame[k] = v
	}
	f.Committed = append(f.Committed, frame)
	return nil
}

// SetReversed records the orientation.
func (f *FakeDriver) SetReversed(reversed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("reverse")
	f.ReverseCalls++
	if f.ReverseError != nil {
		return f.ReverseError
	}
	f.Reversed = reversed
	return nil
}

// LastFrame returns the text on line of the last committed frame.
func (f *FakeDriver) LastFrame(line int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Committed) == 0 {
		return ""
	}
	return f.Committed[len(f.Committed)-1][line]
}

// OpString returns the recorded operations joined by commas.
func (f *FakeDriver) OpString() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.Ops, ",")
}

// FakeController records frames flushed by a Canvas.
type FakeController struct {
	Inits    int
	Flushes  int
	Reversed bool
	LastPix  []byte

	// FlushError, if set, is returned by Flush.
	FlushError error
}

// Init records an init.
func (c *FakeController) Init() error {
	c.Inits++
	return nil
}

// Flush copies the frame.
func (c *FakeController) Flush(frame *image1bit.VerticalLSB) error {
	if c.FlushError != nil {
		return c.FlushError
	}
	c.Flushes++
	c.LastPix = append(c.LastPix[:0], frame.Pix...)
	return nil
}

// SetReversed records the orientation.
func (c *FakeController) SetReversed(reversed bool) error {
	c.Reversed = reversed
	return nil
}
