package sensor

import (
	"errors"
	"sync"

	"github.com/sweeney/climate-panel/internal/logic"
)

// Sample is one scripted sensor result.
type Sample struct {
	Value int
	Fail  bool
}

// Failure is a scripted failed read.
var Failure = Sample{Fail: true}

// FakeReader is a test double that returns scripted values per quantity.
// Each call to Read consumes the next sample for that quantity; once
// exhausted the last sample repeats.
type FakeReader struct {
	mu      sync.Mutex
	samples map[logic.Quantity][]Sample
	index   map[logic.Quantity]int
	calls   []logic.Quantity
}

// NewFakeReader creates a FakeReader with the given scripts.
func NewFakeReader(humidity, temperature []Sample) *FakeReader {
	return &FakeReader{
		samples: map[logic.Quantity][]Sample{
			logic.QuantityHumidity:    humidity,
			logic.QuantityTemperature: temperature,
		},
		index: map[logic.Quantity]int{},
	}
}

// Read returns the next scripted sample for q.
func (f *FakeReader) Read(q logic.Quantity) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, q)
	s := f.samples[q]
	if len(s) == 0 {
		return 0, errors.New("no samples configured")
	}

	i := f.index[q]
	if i < len(s)-1 {
		f.index[q] = i + 1
	}
	if s[i].Fail {
		return 0, ErrReadFailed
	}
	return s[i].Value, nil
}

// Calls returns the quantities requested so far, in order.
func (f *FakeReader) Calls() []logic.Quantity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]logic.Quantity(nil), f.calls...)
}
