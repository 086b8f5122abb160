// Package status provides a thread-safe diagnostics tracker for the panel daemon.
// It is read by the heartbeat logger and the -print-state mode.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/climate-panel/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs        int64
	TiltPollMs    int64
	RenderMs      int64
	HeartbeatMs   int64
	TiltThreshold int
	QueueSize     int
	Controller    string
	Simulated     bool
}

// Counts tracks activity since startup.
type Counts struct {
	ButtonEvents     int
	DroppedEvents    int
	ScreenChanges    int
	TonesEmitted     int
	TonesSuppressed  int
	SensorFailures   int
	OrientationFlips int
	Frames           int
	FrameErrors      int
}

// UI is the user-visible part of the shared state.
type UI struct {
	Screen      logic.Screen
	Temperature int
	Humidity    int
	Inverted    bool
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type and stays valid after the lock is released.
type Snapshot struct {
	UI        UI
	Counts    Counts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds counters behind an RWMutex.
// All recording methods are safe to call on a nil *Tracker.
// Never call it from interrupt context; dropped events are pulled
// from the queue's own atomic counter at snapshot time instead.
type Tracker struct {
	mu      sync.RWMutex
	snap    Snapshot
	dropped func() uint64
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// SetDropCounter registers the source of the dropped-event count.
func (t *Tracker) SetDropCounter(fn func() uint64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.dropped = fn
	t.mu.Unlock()
}

// UpdateUI records the latest user-visible state.
func (t *Tracker) UpdateUI(ui UI) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.snap.UI = ui
	t.mu.Unlock()
}

func (t *Tracker) inc(field func(c *Counts)) {
	if t == nil {
		return
	}
	t.mu.Lock()
	field(&t.snap.Counts)
	t.mu.Unlock()
}

// ButtonEvent counts a button event taken off the queue.
func (t *Tracker) ButtonEvent() { t.inc(func(c *Counts) { c.ButtonEvents++ }) }

// ScreenChange counts a screen transition.
func (t *Tracker) ScreenChange() { t.inc(func(c *Counts) { c.ScreenChanges++ }) }

// ToneEmitted counts a completed tone.
func (t *Tracker) ToneEmitted() { t.inc(func(c *Counts) { c.TonesEmitted++ }) }

// ToneSuppressed counts a tone request ignored because one was in flight.
func (t *Tracker) ToneSuppressed() { t.inc(func(c *Counts) { c.TonesSuppressed++ }) }

// SensorFailure counts a failed sensor read.
func (t *Tracker) SensorFailure() { t.inc(func(c *Counts) { c.SensorFailures++ }) }

// OrientationFlip counts a change of tilt classification.
func (t *Tracker) OrientationFlip() { t.inc(func(c *Counts) { c.OrientationFlips++ }) }

// Frame counts a rendered frame; failed frames are counted separately.
func (t *Tracker) Frame(err error) {
	t.inc(func(c *Counts) {
		if err != nil {
			c.FrameErrors++
			return
		}
		c.Frames++
	})
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	dropped := t.dropped
	t.mu.RUnlock()
	if dropped != nil {
		s.Counts.DroppedEvents = int(dropped())
	}
	s.Now = time.Now()
	return s
}
