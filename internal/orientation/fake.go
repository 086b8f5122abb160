package orientation

import (
	"errors"
	"sync"

	"github.com/sweeney/climate-panel/internal/logic"
)

// FakeReader is a test double that returns scripted Y-axis samples.
// Each call consumes the next sample; once exhausted the last repeats.
type FakeReader struct {
	mu    sync.Mutex
	ys    []int16
	index int

	// ReadError, if set, is returned by ReadAcceleration.
	ReadError error
}

// NewFakeReader creates a FakeReader from Y-axis values.
func NewFakeReader(ys ...int16) *FakeReader {
	return &FakeReader{ys: ys}
}

// ReadAcceleration returns the next scripted sample.
func (f *FakeReader) ReadAcceleration() (logic.Acceleration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadError != nil {
		return logic.Acceleration{}, f.ReadError
	}
	if len(f.ys) == 0 {
		return logic.Acceleration{}, errors.New("no samples configured")
	}
	y := f.ys[f.index]
	if f.index < len(f.ys)-1 {
		f.index++
	}
	return logic.Acceleration{Y: y}, nil
}
