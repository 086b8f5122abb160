//go:build tinygo

package main

import (
	"context"
	"fmt"
	"log"
	"machine"
	"time"

	"tinygo.org/x/drivers/buzzer"
	"tinygo.org/x/drivers/dht"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/gpio"
	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/orientation"
	"github.com/sweeney/climate-panel/internal/router"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/status"
	"github.com/sweeney/climate-panel/internal/tone"
)

// DHT11 data line on the reference board.
const pinDHT = machine.Pin(4)

const (
	period    = 100 * time.Millisecond
	heartbeat = 15 * time.Minute
)

func main() {
	pins := gpio.DefaultPins
	for _, n := range pins.Enables() {
		p := machine.Pin(n)
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		log.Fatalf("fatal: configure i2c: %v", err)
	}

	queue := router.NewQueue(router.DefaultQueueSize)

	bz := buzzer.New(machine.Pin(pins.Buzzer))
	buttons, err := newPinButtons(pins, queue.FromISR)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	hw := &hardware{
		sensor:  newDHTReader(pinDHT),
		accel:   orientation.NewADXL345Reader(machine.I2C0, orientation.DefaultAddress),
		display: display.NewCanvas(display.NewSH1106(machine.I2C0, display.DefaultAddress)),
		emitter: tone.NewBuzzer(buzzerLine{dev: &bz}, nil),
		irq:     buttons,
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:        period.Milliseconds(),
		TiltPollMs:    period.Milliseconds(),
		RenderMs:      period.Milliseconds(),
		HeartbeatMs:   heartbeat.Milliseconds(),
		TiltThreshold: logic.DefaultTiltThreshold,
		QueueSize:     router.DefaultQueueSize,
		Controller:    "sh1106",
	})
	p := newPanel(hw, queue, logic.DefaultTiltThreshold, tracker)
	if err := p.startup(); err != nil {
		log.Fatalf("fatal: %v", err)
	}

	poll := time.NewTicker(period)
	tilt := time.NewTicker(period)
	render := time.NewTicker(period)
	hb := time.NewTicker(heartbeat)
	p.run(context.Background(), ticks{poll: poll.C, tilt: tilt.C, render: render.C, heartbeat: hb.C})
}

// pinButtons delivers rising edges on the two button pins. Masking detaches
// the pin interrupt handlers.
type pinButtons struct {
	next, prev machine.Pin
	notify     gpio.Notify
	handler    func(machine.Pin)
}

func newPinButtons(pins gpio.Pins, notify gpio.Notify) (*pinButtons, error) {
	b := &pinButtons{
		next:   machine.Pin(pins.Next),
		prev:   machine.Pin(pins.Previous),
		notify: notify,
	}
	b.handler = func(p machine.Pin) {
		if p == b.prev {
			b.notify(logic.ButtonPrevious)
			return
		}
		b.notify(logic.ButtonNext)
	}
	b.next.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	b.prev.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	if err := b.Enable(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *pinButtons) Disable() error {
	if err := b.next.SetInterrupt(machine.PinRising, nil); err != nil {
		return fmt.Errorf("mask next: %w", err)
	}
	if err := b.prev.SetInterrupt(machine.PinRising, nil); err != nil {
		return fmt.Errorf("mask previous: %w", err)
	}
	return nil
}

func (b *pinButtons) Enable() error {
	if err := b.next.SetInterrupt(machine.PinRising, b.handler); err != nil {
		return fmt.Errorf("unmask next: %w", err)
	}
	if err := b.prev.SetInterrupt(machine.PinRising, b.handler); err != nil {
		return fmt.Errorf("unmask previous: %w", err)
	}
	return nil
}

// dhtReader reads a DHT11. The driver reports tenths; the DHT11 only
// resolves whole units.
type dhtReader struct {
	dev dht.Device
}

func newDHTReader(pin machine.Pin) *dhtReader {
	dev := dht.New(pin, dht.DHT11)
	dev.Configure(dht.UpdatePolicy{UpdateAutomatically: false})
	return &dhtReader{dev: dev}
}

func (r *dhtReader) Read(q logic.Quantity) (int, error) {
	if err := r.dev.ReadMeasurements(); err != nil {
		return 0, fmt.Errorf("%w: %v", sensor.ErrReadFailed, err)
	}
	if q == logic.QuantityTemperature {
		t, err := r.dev.Temperature()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", sensor.ErrReadFailed, err)
		}
		return int(t) / 10, nil
	}
	h, err := r.dev.Humidity()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", sensor.ErrReadFailed, err)
	}
	return int(h) / 10, nil
}

// buzzerLine drives the buzzer as a plain on/off output.
type buzzerLine struct {
	dev *buzzer.Device
}

func (b buzzerLine) SetValue(v int) error {
	if v != 0 {
		return b.dev.On()
	}
	return b.dev.Off()
}
