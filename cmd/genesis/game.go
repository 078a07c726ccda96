package main

import (
	"image/color"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/andrewrk/genesis/gfx/ebitengfx"
)

// game implements ebiten.Game.
type game struct {
	view   *view
	width  int
	height int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	return g.view.update()
}

func (g *game) Draw(screen *ebiten.Image) {
	fill := func(x, y, w, h float64, c color.Color) {
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
	if err := g.view.draw(ebitengfx.Screen(screen), fill); err != nil {
		glog.Errorf("draw: %v", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
