package main

import (
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewrk/genesis"
	"github.com/andrewrk/genesis/gfx/softgfx"
	"github.com/andrewrk/genesis/waveform"
)

type sineDecoder struct {
	chunks int
}

func (d *sineDecoder) Format() waveform.Format {
	return waveform.Format{SampleRate: waveform.SampleRate, Channels: 1}
}

func (d *sineDecoder) Next() ([]float64, error) {
	if d.chunks == 0 {
		return nil, io.EOF
	}
	d.chunks--
	return []float64{0.5, -0.5, 0.25, -0.25}, nil
}

func (d *sineDecoder) Close() error { return nil }

func newTestView(t *testing.T, wave *waveform.Waveform) (*view, *softgfx.Device) {
	t.Helper()
	device := softgfx.New()
	renderer, err := genesis.NewTextRenderer(device)
	require.NoError(t, err)
	t.Cleanup(renderer.Dispose)

	v, err := newView(renderer, wave, &viewConfig{
		FontSize: 14,
		Color:    color.White,
		Width:    120,
		Height:   80,
	})
	require.NoError(t, err)
	return v, device
}

func TestViewComplete(t *testing.T) {
	wave := waveform.LoadWith("sine.wav", func(string) (waveform.Decoder, error) {
		return &sineDecoder{chunks: 100}, nil
	})
	require.NoError(t, wave.Wait())

	v, device := newTestView(t, wave)
	require.NoError(t, v.update())
	assert.Equal(t, "Complete: 0.01s at 44100Hz", v.state.Text())
	assert.Len(t, v.peaks, 120-2*margin)
	assert.False(t, v.state.Stale())
	assert.False(t, v.title.Stale())

	texture, err := device.NewRenderTexture(120, 80)
	require.NoError(t, err)
	frame := texture.(*softgfx.Texture)
	var fills int
	err = v.draw(frame, func(x, y, w, h float64, c color.Color) { fills++ })
	require.NoError(t, err)
	assert.Equal(t, 1+len(v.peaks), fills)
}

func TestViewError(t *testing.T) {
	wave := waveform.Load(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, wave.Wait())

	v, _ := newTestView(t, wave)
	require.NoError(t, v.update())
	assert.Contains(t, v.state.Text(), "Error: ")
	assert.Nil(t, v.peaks)
}
