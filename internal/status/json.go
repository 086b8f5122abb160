package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string     `json:"event,omitempty"`
	Screen        string     `json:"screen"`
	TemperatureC  int        `json:"temperature_c"`
	HumidityPct   int        `json:"humidity_pct"`
	Inverted      bool       `json:"inverted"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	Counts        CountsJSON `json:"counts"`
	Config        ConfigJSON `json:"config"`
}

// CountsJSON is the JSON representation of activity counters.
type CountsJSON struct {
	ButtonEvents     int `json:"button_events"`
	DroppedEvents    int `json:"dropped_events"`
	ScreenChanges    int `json:"screen_changes"`
	TonesEmitted     int `json:"tones_emitted"`
	TonesSuppressed  int `json:"tones_suppressed"`
	SensorFailures   int `json:"sensor_failures"`
	OrientationFlips int `json:"orientation_flips"`
	Frames           int `json:"frames"`
	FrameErrors      int `json:"frame_errors"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs        int64  `json:"poll_ms"`
	TiltPollMs    int64  `json:"tilt_poll_ms"`
	RenderMs      int64  `json:"render_ms"`
	HeartbeatMs   int64  `json:"heartbeat_ms"`
	TiltThreshold int    `json:"tilt_threshold"`
	QueueSize     int    `json:"queue_size"`
	Controller    string `json:"controller"`
	Simulated     bool   `json:"simulated,omitempty"`
}

func buildInner(snap Snapshot) StatusInner {
	screen := "UNKNOWN"
	if snap.UI.Screen.Valid() {
		screen = snap.UI.Screen.String()
	}

	c := snap.Counts
	return StatusInner{
		Screen:        screen,
		TemperatureC:  snap.UI.Temperature,
		HumidityPct:   snap.UI.Humidity,
		Inverted:      snap.UI.Inverted,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			ButtonEvents:     c.ButtonEvents,
			DroppedEvents:    c.DroppedEvents,
			ScreenChanges:    c.ScreenChanges,
			TonesEmitted:     c.TonesEmitted,
			TonesSuppressed:  c.TonesSuppressed,
			SensorFailures:   c.SensorFailures,
			OrientationFlips: c.OrientationFlips,
			Frames:           c.Frames,
			FrameErrors:      c.FrameErrors,
		},
		Config: ConfigJSON{
			PollMs:        snap.Config.PollMs,
			TiltPollMs:    snap.Config.TiltPollMs,
			RenderMs:      snap.Config.RenderMs,
			HeartbeatMs:   snap.Config.HeartbeatMs,
			TiltThreshold: snap.Config.TiltThreshold,
			QueueSize:     snap.Config.QueueSize,
			Controller:    snap.Config.Controller,
			Simulated:     snap.Config.Simulated,
		},
	}
}

// FormatJSON returns the indented JSON status for -print-state (no event).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the single-line JSON status for a log event.
func FormatStatusEvent(snap Snapshot, event string) []byte {
	inner := buildInner(snap)
	inner.Event = event

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
