// Package display draws the panel's status line on a small monochrome OLED.
package display

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Panel geometry. Text lines map onto the controller's 8-pixel pages.
const (
	Width      = 128
	Height     = 64
	LineHeight = 8
	Lines      = Height / LineHeight
)

// Driver is the display primitive set. Callers must hold the display lock.
type Driver interface {
	Init() error
	Clear()
	DrawTextLine(text string, line int)
	Update() error
	SetReversed(reversed bool) error
}

// Controller pushes a finished frame to the panel hardware.
type Controller interface {
	Init() error
	Flush(frame *image1bit.VerticalLSB) error
	SetReversed(reversed bool) error
}

// Canvas is a Driver that renders text into an in-memory frame and hands
// it to a Controller on Update. It also satisfies drivers.Displayer.
type Canvas struct {
	ctrl  Controller
	frame *image1bit.VerticalLSB
	font  tinyfont.Fonter
}

// NewCanvas creates a Canvas on ctrl using the proggy 8pt font.
func NewCanvas(ctrl Controller) *Canvas {
	return &Canvas{
		ctrl:  ctrl,
		frame: image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
		font:  &proggy.TinySZ8pt7b,
	}
}

// Init initializes the controller and blanks the panel.
func (d *Canvas) Init() error {
	if err := d.ctrl.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	d.Clear()
	return d.Update()
}

// Clear blanks the frame buffer. The panel is unchanged until Update.
func (d *Canvas) Clear() {
	for i := range d.frame.Pix {
		d.frame.Pix[i] = 0
	}
}

// DrawTextLine draws text horizontally centred on text line index line.
// Text wider than the panel is clipped.
func (d *Canvas) DrawTextLine(text string, line int) {
	if line < 0 || line >= Lines {
		return
	}
	_, w := tinyfont.LineWidth(d.font, text)
	x := int16(0)
	if int(w) < Width {
		x = int16((Width - int(w)) / 2)
	}
	baseline := int16((line+1)*LineHeight - 1)
	tinyfont.WriteLine(d, d.font, x, baseline, text, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

// Update commits the frame buffer to the panel.
func (d *Canvas) Update() error {
	return d.ctrl.Flush(d.frame)
}

// SetReversed rotates the panel output by 180 degrees.
func (d *Canvas) SetReversed(reversed bool) error {
	return d.ctrl.SetReversed(reversed)
}

// Frame returns the frame buffer. It is only valid while the display lock is held.
func (d *Canvas) Frame() *image1bit.VerticalLSB {
	return d.frame
}

// Size implements drivers.Displayer.
func (d *Canvas) Size() (x, y int16) {
	return Width, Height
}

// SetPixel implements drivers.Displayer. Any non-black colour lights the pixel.
func (d *Canvas) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= Width || int(y) >= Height {
		return
	}
	bit := image1bit.Off
	if c.R|c.G|c.B != 0 {
		bit = image1bit.On
	}
	d.frame.SetBit(int(x), int(y), bit)
}

// Display implements drivers.Displayer.
func (d *Canvas) Display() error {
	return d.Update()
}
