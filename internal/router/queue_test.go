package router

import (
	"testing"

	"github.com/sweeney/climate-panel/internal/logic"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(4)
	ids := []logic.ButtonID{logic.ButtonNext, logic.ButtonPrevious, logic.ButtonPrevious, logic.ButtonNext}
	for _, id := range ids {
		if !q.FromISR(id) {
			t.Fatalf("enqueue %s failed", id)
		}
	}
	for i, want := range ids {
		got := <-q.Events()
		if got.Source != want {
			t.Errorf("event %d: got %s, want %s", i, got.Source, want)
		}
	}
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(2)
	q.FromISR(logic.ButtonNext)
	q.FromISR(logic.ButtonNext)

	// Must return immediately, not block.
	if q.FromISR(logic.ButtonPrevious) {
		t.Error("enqueue into full queue should fail")
	}
	if q.FromISR(logic.ButtonPrevious) {
		t.Error("enqueue into full queue should fail")
	}
	if q.Dropped() != 2 {
		t.Errorf("Dropped: got %d, want 2", q.Dropped())
	}

	// The queued events are the oldest ones.
	if ev := <-q.Events(); ev.Source != logic.ButtonNext {
		t.Errorf("got %s, want NEXT", ev.Source)
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewQueue(0)
	for i := 0; i < DefaultQueueSize; i++ {
		if !q.FromISR(logic.ButtonNext) {
			t.Fatalf("enqueue %d failed below default capacity", i)
		}
	}
	if q.FromISR(logic.ButtonNext) {
		t.Error("expected drop at default capacity")
	}
}
