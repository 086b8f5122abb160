//go:build !tinygo

// Command climate-panel drives a two-screen humidity/temperature panel:
// two buttons switch screens with an audible click, and the display flips
// when the panel is turned upside down.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/gpio"
	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/orientation"
	"github.com/sweeney/climate-panel/internal/router"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/sim"
	"github.com/sweeney/climate-panel/internal/status"
	"github.com/sweeney/climate-panel/internal/tone"
)

type config struct {
	poll          time.Duration
	tiltPoll      time.Duration
	render        time.Duration
	heartbeat     time.Duration
	tiltThreshold int
	queue         int

	chip     string
	pins     gpio.Pins
	debounce time.Duration

	i2c        string
	oledAddr   uint
	controller string
	accelAddr  uint
	iio        string

	printState bool
	sim        bool
}

func main() {
	var cfg config
	flag.DurationVar(&cfg.poll, "poll", 100*time.Millisecond, "Sensor polling interval")
	flag.DurationVar(&cfg.tiltPoll, "tilt-poll", 100*time.Millisecond, "Accelerometer polling interval")
	flag.DurationVar(&cfg.render, "render", 100*time.Millisecond, "Display refresh interval")
	flag.DurationVar(&cfg.heartbeat, "heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	flag.IntVar(&cfg.tiltThreshold, "tilt-threshold", logic.DefaultTiltThreshold, "Raw Y-axis reading at or above which the display is inverted")
	flag.IntVar(&cfg.queue, "queue", router.DefaultQueueSize, "Button event queue depth")
	flag.StringVar(&cfg.chip, "chip", "gpiochip0", "GPIO chip name")
	flag.IntVar(&cfg.pins.Next, "pin-next", gpio.DefaultPins.Next, "GPIO line of the Next button")
	flag.IntVar(&cfg.pins.Previous, "pin-prev", gpio.DefaultPins.Previous, "GPIO line of the Previous button")
	flag.IntVar(&cfg.pins.Buzzer, "pin-buzzer", gpio.DefaultPins.Buzzer, "GPIO line of the buzzer")
	flag.IntVar(&cfg.pins.OLEDEnable, "pin-oled-en", gpio.DefaultPins.OLEDEnable, "GPIO line of the display power enable")
	flag.IntVar(&cfg.pins.AmpEnable, "pin-amp-en", gpio.DefaultPins.AmpEnable, "GPIO line of the amplifier power enable")
	flag.IntVar(&cfg.pins.AccelEnable, "pin-accel-en", gpio.DefaultPins.AccelEnable, "GPIO line of the accelerometer power enable")
	flag.DurationVar(&cfg.debounce, "button-debounce", 10*time.Millisecond, "Kernel debounce period for the button lines")
	flag.StringVar(&cfg.i2c, "i2c", "", "I2C bus name (empty for the first bus)")
	flag.UintVar(&cfg.oledAddr, "oled-addr", display.DefaultAddress, "Display I2C address (sh1106 only)")
	flag.StringVar(&cfg.controller, "controller", "sh1106", "Display controller: sh1106 or ssd1306")
	flag.UintVar(&cfg.accelAddr, "accel-addr", uint(orientation.DefaultAddress), "Accelerometer I2C address")
	flag.StringVar(&cfg.iio, "iio", sensor.DefaultIIODir, "IIO device directory of the DHT11")
	flag.BoolVar(&cfg.printState, "print-state", false, "Print current state and exit")
	flag.BoolVar(&cfg.sim, "sim", false, "Run the desktop simulator instead of real hardware")

	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config) error {
	if cfg.controller != "sh1106" && cfg.controller != "ssd1306" {
		return fmt.Errorf("unknown display controller %q", cfg.controller)
	}
	if cfg.tiltThreshold < -32768 || cfg.tiltThreshold > 32767 {
		return fmt.Errorf("tilt threshold %d out of range", cfg.tiltThreshold)
	}

	queue := router.NewQueue(cfg.queue)

	var (
		hw    *hardware
		board *sim.Board
		err   error
	)
	if cfg.sim {
		hw, board = openSim(queue.FromISR)
	} else {
		hw, err = openHardware(cfg, queue.FromISR)
		if err != nil {
			return fmt.Errorf("init hardware: %w", err)
		}
	}
	defer func() {
		if err := hw.Close(); err != nil {
			log.Printf("release hardware: %v", err)
		}
	}()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:        cfg.poll.Milliseconds(),
		TiltPollMs:    cfg.tiltPoll.Milliseconds(),
		RenderMs:      cfg.render.Milliseconds(),
		HeartbeatMs:   cfg.heartbeat.Milliseconds(),
		TiltThreshold: cfg.tiltThreshold,
		QueueSize:     cfg.queue,
		Controller:    cfg.controller,
		Simulated:     cfg.sim,
	})
	p := newPanel(hw, queue, int16(cfg.tiltThreshold), tracker)

	if cfg.printState {
		out, err := p.printState()
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if err := p.startup(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case s := <-sigCh:
			log.Printf("received %v, shutting down", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	t, stop := newTicks(cfg)
	defer stop()

	log.Printf("started: poll=%v tilt-poll=%v render=%v heartbeat=%v controller=%s sim=%v",
		cfg.poll, cfg.tiltPoll, cfg.render, cfg.heartbeat, cfg.controller, cfg.sim)

	if board == nil {
		return p.run(ctx, t)
	}

	// The simulator window owns the main goroutine.
	done := make(chan error, 1)
	go func() { done <- p.run(ctx, t) }()
	werr := sim.Run(ctx, board)
	cancel()
	if err := <-done; err != nil {
		return err
	}
	return werr
}

// newTicks creates the task tickers. The heartbeat channel is nil when
// disabled.
func newTicks(cfg config) (ticks, func()) {
	poll := time.NewTicker(cfg.poll)
	tilt := time.NewTicker(cfg.tiltPoll)
	render := time.NewTicker(cfg.render)
	t := ticks{poll: poll.C, tilt: tilt.C, render: render.C}
	stops := []func(){poll.Stop, tilt.Stop, render.Stop}
	if cfg.heartbeat > 0 {
		hb := time.NewTicker(cfg.heartbeat)
		t.heartbeat = hb.C
		stops = append(stops, hb.Stop)
	}
	return t, func() {
		for _, s := range stops {
			s()
		}
	}
}

// openSim builds the desktop stand-in hardware.
func openSim(notify gpio.Notify) (*hardware, *sim.Board) {
	board := sim.NewBoard(notify)
	hw := &hardware{
		sensor:  board.Climate,
		accel:   board.Tilt,
		display: display.NewCanvas(board.Panel),
		emitter: sim.NewBeeper(tone.DefaultPattern),
		irq:     board.Buttons,
	}
	hw.add(board.Buttons)
	return hw, board
}
