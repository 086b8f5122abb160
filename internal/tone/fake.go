package tone

import "sync"

// FakeEmitter is a test double that blocks each Emit until released.
type FakeEmitter struct {
	mu sync.Mutex

	// Started receives one value each time Emit begins.
	Started chan struct{}

	release  chan struct{}
	released bool
	calls    int
	active  int
	peak    int

	// EmitError, if set, is returned by Emit.
	EmitError error
}

// NewFakeEmitter creates a FakeEmitter. When blocking is false, Emit
// returns immediately.
func NewFakeEmitter(blocking bool) *FakeEmitter {
	f := &FakeEmitter{Started: make(chan struct{}, 64)}
	if blocking {
		f.release = make(chan struct{})
	}
	return f
}

// Emit records the call and waits for Release when blocking.
func (f *FakeEmitter) Emit() error {
	f.mu.Lock()
	f.calls++
	f.active++
	if f.active > f.peak {
		f.peak = f.active
	}
	release := f.release
	f.mu.Unlock()

	select {
	case f.Started <- struct{}{}:
	default:
	}

	if release != nil {
		<-release
	}

	f.mu.Lock()
	f.active--
	f.mu.Unlock()
	return f.EmitError
}

// Release unblocks every pending and future Emit.
func (f *FakeEmitter) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.release != nil && !f.released {
		close(f.release)
		f.released = true
	}
}

// Calls returns how many times Emit was called.
func (f *FakeEmitter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Peak returns the highest number of concurrent Emit calls observed.
func (f *FakeEmitter) Peak() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.peak
}
