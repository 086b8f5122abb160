package gpio

import "sync"

// FakeOutput records values written to an output line.
type FakeOutput struct {
	mu     sync.Mutex
	values []int
	closed bool

	// SetError, if set, is returned by SetValue.
	SetError error
}

// SetValue records v.
func (f *FakeOutput) SetValue(v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetError != nil {
		return f.SetError
	}
	f.values = append(f.values, v)
	return nil
}

// Values returns the recorded values.
func (f *FakeOutput) Values() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.values...)
}

// Close drives the line low and marks it closed.
func (f *FakeOutput) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = append(f.values, 0)
	f.closed = true
	return nil
}

// Closed reports whether Close was called.
func (f *FakeOutput) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
