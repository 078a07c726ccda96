package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/golang/glog"
	"golang.org/x/image/draw"

	"github.com/andrewrk/genesis"
	"github.com/andrewrk/genesis/gfx/softgfx"
	"github.com/andrewrk/genesis/waveform"
)

// renderSnapshot waits for the waveform to load and writes a single
// frame to path, rendered with the software device.
func renderSnapshot(path string, wave *waveform.Waveform, cfg *viewConfig) error {
	if err := wave.Wait(); err != nil {
		glog.Warningf("waveform failed to load: %v", err)
	}

	device := softgfx.New()
	renderer, err := genesis.NewTextRenderer(device)
	if err != nil {
		return err
	}
	defer renderer.Dispose()
	v, err := newView(renderer, wave, cfg)
	if err != nil {
		return err
	}
	if err := v.update(); err != nil {
		return err
	}

	texture, err := device.NewRenderTexture(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer texture.Dispose()
	frame := texture.(*softgfx.Texture)
	fill := func(x, y, w, h float64, c color.Color) {
		rect := image.Rect(int(x), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
		draw.Draw(frame.Image(), rect, image.NewUniform(c), image.Point{}, draw.Over)
	}
	if err := v.draw(frame, fill); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	glog.Infof("snapshot written to %s", path)
	return f.Close()
}
