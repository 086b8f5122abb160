package router

import "sync"

// FakeInterrupts records mask operations for test assertions.
type FakeInterrupts struct {
	mu sync.Mutex

	// Calls holds "disable" and "enable" in call order.
	Calls []string

	// Masked reports whether interrupts are currently disabled.
	Masked bool

	// DisableError, if set, is returned by Disable.
	DisableError error

	// OnDisable, if set, runs inside Disable after masking.
	OnDisable func()
}

// Disable records a mask.
func (f *FakeInterrupts) Disable() error {
	f.mu.Lock()
	f.Calls = append(f.Calls, "disable")
	f.Masked = true
	hook := f.OnDisable
	err := f.DisableError
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return err
}

// Enable records an unmask.
func (f *FakeInterrupts) Enable() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "enable")
	f.Masked = false
	return nil
}

// IsMasked reports whether interrupts are currently disabled.
func (f *FakeInterrupts) IsMasked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Masked
}

// CallLog returns a copy of the recorded calls.
func (f *FakeInterrupts) CallLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}
