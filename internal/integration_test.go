package internal

import (
	"image"
	"testing"
	"time"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/orientation"
	"github.com/sweeney/climate-panel/internal/router"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/sim"
	"github.com/sweeney/climate-panel/internal/state"
	"github.com/sweeney/climate-panel/internal/tone"
)

func litPixels(p *sim.Panel) int {
	img := image.NewRGBA(image.Rect(0, 0, display.Width, display.Height))
	p.Render(img)
	n := 0
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if img.RGBAAt(x, y) == sim.Lit {
				n++
			}
		}
	}
	return n
}

// TestIntegrationFullFlow drives the whole pipeline synchronously: a key
// press through the queue and router, a sensor poll, a tilt, and frames
// rendered onto the simulated panel.
func TestIntegrationFullFlow(t *testing.T) {
	st := state.New()
	q := router.NewQueue(router.DefaultQueueSize)
	board := sim.NewBoard(q.FromISR)
	em := tone.NewFakeEmitter(false)
	trig := tone.NewTrigger(st, em, nil)
	rt := router.New(st, board.Buttons, trig, nil)
	renderer := display.NewRenderer(display.NewCanvas(board.Panel), st, nil)
	climate := sensor.NewPoller(board.Climate, st, nil)
	tilt := orientation.NewPoller(board.Tilt, st, logic.DefaultTiltThreshold, nil)

	if err := renderer.Init(); err != nil {
		t.Fatal(err)
	}
	if err := renderer.WaitPage(); err != nil {
		t.Fatal(err)
	}
	if litPixels(board.Panel) == 0 {
		t.Fatal("wait page drew nothing")
	}
	if err := sensor.Init(board.Climate, st); err != nil {
		t.Fatal(err)
	}

	// Next pressed: one event queued, handled by the router.
	board.HandleKey(sim.KeyNext)
	select {
	case ev := <-q.Events():
		rt.Handle(ev)
	case <-time.After(time.Second):
		t.Fatal("no event queued")
	}
	trig.Wait()
	if st.Screen() != logic.ScreenTemperature {
		t.Fatalf("screen: got %s", st.Screen())
	}
	if em.Calls() != 1 {
		t.Errorf("tones: got %d, want 1", em.Calls())
	}

	board.HandleKey(sim.KeyWarmer)
	if err := climate.Poll(); err != nil {
		t.Fatal(err)
	}
	if got := st.Reading(logic.QuantityTemperature); got != 22 {
		t.Errorf("temperature: got %d, want 22", got)
	}

	// Sensor fault keeps the last good value.
	board.HandleKey(sim.KeyFail)
	_ = climate.Poll()
	if got := st.Reading(logic.QuantityTemperature); got != 22 {
		t.Errorf("temperature after fault: got %d, want 22", got)
	}

	if err := renderer.Frame(); err != nil {
		t.Fatal(err)
	}
	upright := litPixels(board.Panel)
	if upright == 0 {
		t.Fatal("frame drew nothing")
	}

	board.HandleKey(sim.KeyTilt)
	if changed, err := tilt.Poll(); err != nil || !changed {
		t.Fatalf("tilt poll: changed=%v err=%v", changed, err)
	}
	if err := renderer.Frame(); err != nil {
		t.Fatal(err)
	}
	if !board.Panel.Reversed() {
		t.Error("panel not reversed after tilt")
	}
	if got := litPixels(board.Panel); got != upright {
		t.Errorf("rotation changed pixel count: %d vs %d", got, upright)
	}
}
