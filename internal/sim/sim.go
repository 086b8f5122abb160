// Package sim stands in for the panel hardware on a desktop. The display is
// drawn in a window, the arrow keys act as the two buttons, and the climate
// and tilt readings are driven from the keyboard.
package sim

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/sweeney/climate-panel/internal/display"
	"github.com/sweeney/climate-panel/internal/gpio"
	"github.com/sweeney/climate-panel/internal/logic"
	"github.com/sweeney/climate-panel/internal/sensor"
	"github.com/sweeney/climate-panel/internal/tone"
)

// Lit is the colour of a lit OLED pixel.
var Lit = color.RGBA{R: 0x9f, G: 0xdf, B: 0xff, A: 0xff}

// Panel is a display.Controller that keeps the last flushed frame for the
// window to draw.
type Panel struct {
	mu       sync.Mutex
	frame    *image1bit.VerticalLSB
	reversed bool
	flushes  int
}

// NewPanel creates a blank panel.
func NewPanel() *Panel {
	return &Panel{frame: image1bit.NewVerticalLSB(image.Rect(0, 0, display.Width, display.Height))}
}

// Init is a no-op.
func (p *Panel) Init() error { return nil }

// Flush copies frame.
func (p *Panel) Flush(frame *image1bit.VerticalLSB) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.frame.Pix, frame.Pix)
	p.flushes++
	return nil
}

// SetReversed rotates the panel by 180 degrees.
func (p *Panel) SetReversed(reversed bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reversed = reversed
	return nil
}

// Reversed reports the current rotation.
func (p *Panel) Reversed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reversed
}

// Flushes returns the number of frames received.
func (p *Panel) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

// Render paints the panel into dst, which must be Width x Height.
func (p *Panel) Render(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			sx, sy := x, y
			if p.reversed {
				sx, sy = display.Width-1-x, display.Height-1-y
			}
			c := color.RGBA{A: 0xff}
			if p.frame.BitAt(sx, sy) == image1bit.On {
				c = Lit
			}
			dst.SetRGBA(x, y, c)
		}
	}
}

// Buttons delivers key presses as button edges. Masked presses are lost,
// as an edge is when line edge detection is off.
type Buttons struct {
	notify gpio.Notify
	masked atomic.Bool
	missed atomic.Uint64
}

// NewButtons creates Buttons delivering to notify.
func NewButtons(notify gpio.Notify) *Buttons {
	return &Buttons{notify: notify}
}

// Press simulates an edge on button id.
func (b *Buttons) Press(id logic.ButtonID) bool {
	if b.masked.Load() {
		b.missed.Add(1)
		return false
	}
	return b.notify(id)
}

// Disable masks presses.
func (b *Buttons) Disable() error {
	b.masked.Store(true)
	return nil
}

// Enable unmasks presses.
func (b *Buttons) Enable() error {
	b.masked.Store(false)
	return nil
}

// Close masks presses for good.
func (b *Buttons) Close() error {
	return b.Disable()
}

// Missed returns the number of presses lost to masking.
func (b *Buttons) Missed() uint64 {
	return b.missed.Load()
}

// Climate is a sensor.Reader with keyboard-adjustable values.
type Climate struct {
	temperature atomic.Int32
	humidity    atomic.Int32
	failing     atomic.Bool
}

// NewClimate creates a Climate reporting the given values.
func NewClimate(temperature, humidity int) *Climate {
	c := &Climate{}
	c.temperature.Store(int32(temperature))
	c.humidity.Store(int32(humidity))
	return c
}

// Read implements sensor.Reader.
func (c *Climate) Read(q logic.Quantity) (int, error) {
	if c.failing.Load() {
		return 0, fmt.Errorf("%w: simulated %s fault", sensor.ErrReadFailed, q)
	}
	if q == logic.QuantityTemperature {
		return int(c.temperature.Load()), nil
	}
	return int(c.humidity.Load()), nil
}

// Adjust changes q by delta. Humidity is kept within 0..100.
func (c *Climate) Adjust(q logic.Quantity, delta int) {
	if q == logic.QuantityTemperature {
		c.temperature.Add(int32(delta))
		return
	}
	for {
		old := c.humidity.Load()
		v := old + int32(delta)
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		if c.humidity.CompareAndSwap(old, v) {
			return
		}
	}
}

// ToggleFailure flips read failures on or off and returns the new setting.
func (c *Climate) ToggleFailure() bool {
	for {
		old := c.failing.Load()
		if c.failing.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// TiltedY is the Y-axis reading reported while tilted, well past the
// default inversion threshold.
const TiltedY = 256

// Tilt is an orientation.Reader toggled from the keyboard.
type Tilt struct {
	tilted atomic.Bool
}

// ReadAcceleration implements orientation.Reader. Upright the panel reads
// 1g on Z; tilted it reads 1g on Y.
func (t *Tilt) ReadAcceleration() (logic.Acceleration, error) {
	if t.tilted.Load() {
		return logic.Acceleration{Y: TiltedY}, nil
	}
	return logic.Acceleration{Z: TiltedY}, nil
}

// Toggle flips the tilt and returns the new setting.
func (t *Tilt) Toggle() bool {
	for {
		old := t.tilted.Load()
		if t.tilted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Key is a simulator control.
type Key int

// Simulator controls.
const (
	KeyNext Key = iota
	KeyPrevious
	KeyTilt
	KeyFail
	KeyWarmer
	KeyCooler
	KeyWetter
	KeyDrier
)

// Board is the full simulated hardware set.
type Board struct {
	Panel   *Panel
	Buttons *Buttons
	Climate *Climate
	Tilt    *Tilt
}

// NewBoard creates a board whose buttons deliver to notify.
func NewBoard(notify gpio.Notify) *Board {
	return &Board{
		Panel:   NewPanel(),
		Buttons: NewButtons(notify),
		Climate: NewClimate(21, 40),
		Tilt:    &Tilt{},
	}
}

// HandleKey applies one simulator control.
func (b *Board) HandleKey(k Key) {
	switch k {
	case KeyNext:
		b.Buttons.Press(logic.ButtonNext)
	case KeyPrevious:
		b.Buttons.Press(logic.ButtonPrevious)
	case KeyTilt:
		b.Tilt.Toggle()
	case KeyFail:
		b.Climate.ToggleFailure()
	case KeyWarmer:
		b.Climate.Adjust(logic.QuantityTemperature, 1)
	case KeyCooler:
		b.Climate.Adjust(logic.QuantityTemperature, -1)
	case KeyWetter:
		b.Climate.Adjust(logic.QuantityHumidity, 1)
	case KeyDrier:
		b.Climate.Adjust(logic.QuantityHumidity, -1)
	}
}

// SampleRate is the simulator audio rate.
const SampleRate = 44100

// ToneFrequency is the pitch of the simulated buzzer.
const ToneFrequency = 2000

// SquareWave renders pattern as 16-bit little-endian stereo PCM, the format
// ebiten audio players read.
func SquareWave(sampleRate, freq int, pattern []tone.Step) []byte {
	var pcm []byte
	half := sampleRate / freq / 2
	if half < 1 {
		half = 1
	}
	const amp = 0x2000
	for _, s := range pattern {
		on := samples(s.On, sampleRate)
		for i := 0; i < on; i++ {
			v := int16(amp)
			if (i/half)%2 == 1 {
				v = -amp
			}
			pcm = append(pcm, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
		off := samples(s.Off, sampleRate)
		pcm = append(pcm, make([]byte, off*4)...)
	}
	return pcm
}

func samples(d time.Duration, sampleRate int) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}
