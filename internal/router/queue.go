package router

import (
	"sync/atomic"

	"github.com/sweeney/climate-panel/internal/logic"
)

// DefaultQueueSize is the event queue depth.
const DefaultQueueSize = 10

// Queue carries button events from interrupt context to the router.
// The producer side never blocks, logs or allocates.
type Queue struct {
	ch      chan logic.ButtonEvent
	dropped atomic.Uint64
}

// NewQueue creates a queue holding up to capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Queue{ch: make(chan logic.ButtonEvent, capacity)}
}

// FromISR enqueues a press of button id. When the queue is full the event
// is dropped and false is returned.
func (q *Queue) FromISR(id logic.ButtonID) bool {
	select {
	case q.ch <- logic.ButtonEvent{Source: id}:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Events returns the receive side. The router is its only reader.
func (q *Queue) Events() <-chan logic.ButtonEvent {
	return q.ch
}

// Dropped returns how many events were dropped because the queue was full.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
