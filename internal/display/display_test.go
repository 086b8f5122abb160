package display

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func litColumns(pix []byte, page int) (first, last int) {
	first, last = -1, -1
	for x := 0; x < Width; x++ {
		if pix[page*Width+x] != 0 {
			if first < 0 {
				first = x
			}
			last = x
		}
	}
	return first, last
}

func TestDisplayInitBlanks(t *testing.T) {
	ctrl := &FakeController{}
	d := NewCanvas(ctrl)

	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if ctrl.Inits != 1 || ctrl.Flushes != 1 {
		t.Errorf("inits=%d flushes=%d, want 1 and 1", ctrl.Inits, ctrl.Flushes)
	}
	if !bytes.Equal(ctrl.LastPix, make([]byte, Width*Lines)) {
		t.Error("expected a blank frame after Init")
	}
}

func TestDrawTextLineNearItsLine(t *testing.T) {
	ctrl := &FakeController{}
	d := NewCanvas(ctrl)

	d.DrawTextLine("humidity: 40 %", 3)
	if err := d.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Glyphs sit on the line's baseline; tall glyphs and descenders may
	// spill onto the neighbouring pages.
	if first, _ := litColumns(ctrl.LastPix, 3); first < 0 {
		t.Error("line 3 has no lit pixels")
	}
	for page := 0; page < Lines; page++ {
		if page >= 2 && page <= 4 {
			continue
		}
		if first, _ := litColumns(ctrl.LastPix, page); first >= 0 {
			t.Errorf("page %d has lit pixels", page)
		}
	}
}

func TestDrawTextLineCentred(t *testing.T) {
	ctrl := &FakeController{}
	d := NewCanvas(ctrl)

	d.DrawTextLine("Wait...", 3)
	_ = d.Update()

	first, last := litColumns(ctrl.LastPix, 3)
	if first < 0 {
		t.Fatal("nothing drawn")
	}
	left, right := first, Width-1-last
	// Glyph side bearings make exact symmetry impossible; a few pixels is fine.
	if diff := left - right; diff > 6 || diff < -6 {
		t.Errorf("text not centred: left margin %d, right margin %d", left, right)
	}
}

func TestDrawTextLineOutOfRangeIgnored(t *testing.T) {
	ctrl := &FakeController{}
	d := NewCanvas(ctrl)

	d.DrawTextLine("x", -1)
	d.DrawTextLine("x", Lines)
	_ = d.Update()

	if !bytes.Equal(ctrl.LastPix, make([]byte, Width*Lines)) {
		t.Error("out-of-range lines should draw nothing")
	}
}

func TestClearBlanksFrame(t *testing.T) {
	ctrl := &FakeController{}
	d := NewCanvas(ctrl)

	d.DrawTextLine("temperature: 21 C", 3)
	d.Clear()
	_ = d.Update()

	if !bytes.Equal(ctrl.LastPix, make([]byte, Width*Lines)) {
		t.Error("Clear left pixels lit")
	}
}

func TestSetPixelBounds(t *testing.T) {
	d := NewCanvas(&FakeController{})
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	d.SetPixel(-1, 0, white)
	d.SetPixel(Width, 0, white)
	d.SetPixel(0, Height, white)
	d.SetPixel(5, 9, white)

	if d.Frame().BitAt(5, 9) != image1bit.On {
		t.Error("pixel (5,9) not set")
	}
	d.SetPixel(5, 9, color.RGBA{A: 0xff})
	if d.Frame().BitAt(5, 9) != image1bit.Off {
		t.Error("pixel (5,9) not cleared")
	}
}

func TestUpdatePropagatesError(t *testing.T) {
	ctrl := &FakeController{FlushError: errors.New("nack")}
	d := NewCanvas(ctrl)

	if err := d.Update(); err == nil {
		t.Error("expected flush error")
	}
}

// txRecorder is a drivers.I2C that records every write.
type txRecorder struct {
	writes [][]byte
	addrs  []uint16
	err    error
}

func (r *txRecorder) ReadRegister(addr uint8, reg uint8, buf []byte) error  { return nil }
func (r *txRecorder) WriteRegister(addr uint8, reg uint8, buf []byte) error { return nil }

func (r *txRecorder) Tx(addr uint16, w, rd []byte) error {
	if r.err != nil {
		return r.err
	}
	r.addrs = append(r.addrs, addr)
	r.writes = append(r.writes, append([]byte(nil), w...))
	return nil
}

func TestSH1106FlushPages(t *testing.T) {
	bus := &txRecorder{}
	s := NewSH1106(bus, DefaultAddress)
	d := NewCanvas(s)
	d.DrawTextLine("temperature: 21 C", 3)

	if err := d.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(bus.writes) != 2*Lines {
		t.Fatalf("writes: got %d, want %d", len(bus.writes), 2*Lines)
	}
	for page := 0; page < Lines; page++ {
		cmd := bus.writes[2*page]
		want := []byte{sh1106Command, cmdPageAddr | byte(page), cmdColLow | sh1106ColOffset, cmdColHigh}
		if !bytes.Equal(cmd, want) {
			t.Errorf("page %d address: got % x, want % x", page, cmd, want)
		}
		data := bus.writes[2*page+1]
		if len(data) != Width+1 || data[0] != sh1106Data {
			t.Errorf("page %d data: len %d prefix %#x", page, len(data), data[0])
		}
		if !bytes.Equal(data[1:], d.Frame().Pix[page*Width:(page+1)*Width]) {
			t.Errorf("page %d data does not match frame", page)
		}
	}
	for _, a := range bus.addrs {
		if a != DefaultAddress {
			t.Fatalf("wrote to %#x, want %#x", a, DefaultAddress)
		}
	}
}

func TestSH1106SetReversed(t *testing.T) {
	bus := &txRecorder{}
	s := NewSH1106(bus, DefaultAddress)

	if err := s.SetReversed(true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetReversed(false); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{
		{sh1106Command, cmdSegNormal, cmdComScanInc},
		{sh1106Command, cmdSegRemap, cmdComScanDec},
	}
	for i, w := range want {
		if !bytes.Equal(bus.writes[i], w) {
			t.Errorf("write %d: got % x, want % x", i, bus.writes[i], w)
		}
	}
}

func TestSH1106BusError(t *testing.T) {
	bus := &txRecorder{err: errors.New("bus stuck")}
	s := NewSH1106(bus, DefaultAddress)

	if err := s.Init(); err == nil {
		t.Error("Init: expected error")
	}
	if err := s.SetReversed(true); err == nil {
		t.Error("SetReversed: expected error")
	}
}
