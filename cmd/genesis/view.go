package main

import (
	"fmt"
	"image/color"

	"github.com/golang/glog"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrewrk/genesis"
	"github.com/andrewrk/genesis/font"
	"github.com/andrewrk/genesis/gfx"
	"github.com/andrewrk/genesis/waveform"
)

const margin = 12

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x16, 0xff}
	waveColor       = color.RGBA{0x4c, 0xaf, 0x8f, 0xff}
)

type viewConfig struct {
	FontPath  string
	FontIndex int
	FontSize  int
	Color     color.Color
	Width     int
	Height    int
}

// rectFiller fills a rectangle on the frame being drawn.
type rectFiller func(x, y, w, h float64, c color.Color)

// view is the frame content shared by the window and the snapshot:
// a title, the load state and, once complete, the waveform peaks.
type view struct {
	renderer *genesis.TextRenderer
	wave     *waveform.Waveform
	width    int
	height   int

	title *genesis.Label
	state *genesis.Label
	peaks []waveform.Peak
}

func loadFace(renderer *genesis.TextRenderer, cfg *viewConfig) (font.Face, error) {
	if cfg.FontPath == "" {
		return renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	}
	return renderer.LoadFaceIndex(cfg.FontPath, cfg.FontIndex)
}

func newView(renderer *genesis.TextRenderer, wave *waveform.Waveform, cfg *viewConfig) (*view, error) {
	face, err := loadFace(renderer, cfg)
	if err != nil {
		return nil, err
	}
	if err := renderer.Preload(face, cfg.FontSize); err != nil {
		return nil, err
	}

	v := &view{
		renderer: renderer,
		wave:     wave,
		width:    cfg.Width,
		height:   cfg.Height,
		title:    renderer.CreateLabel(face),
		state:    renderer.CreateLabel(face),
	}
	for _, label := range []*genesis.Label{v.title, v.state} {
		label.SetFontSize(cfg.FontSize)
		label.SetColor(cfg.Color)
	}
	v.title.SetText(wave.Path())
	return v, nil
}

func stateText(wave *waveform.Waveform) string {
	state := wave.State()
	switch state {
	case waveform.StateReading:
		return fmt.Sprintf("%s: %d frames", state, wave.Frames())
	case waveform.StateComplete:
		seconds := float64(wave.Frames()) / waveform.SampleRate
		return fmt.Sprintf("%s: %.2fs at %dHz", state, seconds, waveform.SampleRate)
	case waveform.StateError:
		return fmt.Sprintf("%s: %v", state, wave.Err())
	}
	return state.String()
}

// update polls the waveform and refreshes stale labels.
func (v *view) update() error {
	text := stateText(v.wave)
	if text != v.state.Text() {
		v.state.SetText(text)
	}
	if v.peaks == nil && v.wave.State() == waveform.StateComplete {
		v.peaks = v.wave.Peaks(v.width - 2*margin)
		if v.peaks == nil {
			v.peaks = []waveform.Peak{}
		}
		glog.Infof("waveform summarized in %d peaks", len(v.peaks))
	}
	for _, label := range []*genesis.Label{v.title, v.state} {
		if !label.Stale() {
			continue
		}
		if err := label.Update(); err != nil {
			return err
		}
	}
	return nil
}

// draw renders the frame to target, which has the view size.
func (v *view) draw(target gfx.Target, fill rectFiller) error {
	fill(0, 0, float64(v.width), float64(v.height), backgroundColor)

	mid := float64(v.height) / 2
	amplitude := mid - float64(margin)
	for i, peak := range v.peaks {
		top := mid - peak.Max*amplitude
		bottom := mid - peak.Min*amplitude
		fill(float64(margin+i), top, 1, bottom-top+1, waveColor)
	}

	err := v.title.Draw(target, gfx.PixelMVP(v.width, v.height, margin, margin))
	if err != nil {
		return err
	}
	y := float32(v.height - margin - v.state.Height())
	return v.state.Draw(target, gfx.PixelMVP(v.width, v.height, margin, y))
}
