//go:build !tinygo && cgo

package sim

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sweeney/climate-panel/internal/display"
)

// Scale is the window magnification of the 128x64 panel.
const Scale = 4

var keymap = []struct {
	key ebiten.Key
	sim Key
}{
	{ebiten.KeyArrowRight, KeyNext},
	{ebiten.KeyArrowLeft, KeyPrevious},
	{ebiten.KeyT, KeyTilt},
	{ebiten.KeyF, KeyFail},
	{ebiten.KeyArrowUp, KeyWarmer},
	{ebiten.KeyArrowDown, KeyCooler},
	{ebiten.KeyPageUp, KeyWetter},
	{ebiten.KeyPageDown, KeyDrier},
}

type game struct {
	ctx   context.Context
	board *Board
	img   *image.RGBA
	panel *ebiten.Image
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, m := range keymap {
		if inpututil.IsKeyJustPressed(m.key) {
			g.board.HandleKey(m.sim)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.panel == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, display.Width, display.Height))
		g.panel = ebiten.NewImage(display.Width, display.Height)
	}
	g.board.Panel.Render(g.img)
	g.panel.WritePixels(g.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(Scale, Scale)
	screen.DrawImage(g.panel, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return display.Width * Scale, display.Height * Scale
}

// Run opens the simulator window and blocks until it is closed or ctx is
// cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, board *Board) error {
	ebiten.SetWindowTitle("climate-panel (←/→ buttons, T tilt, F sensor fault)")
	ebiten.SetWindowSize(display.Width*Scale, display.Height*Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&game{ctx: ctx, board: board})
	if err == ebiten.Termination {
		return nil
	}
	return err
}
