package waveform

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
)

const (
	// SampleRate of the decoded waveform.
	SampleRate = 44100
	// Channels of the decoded waveform, interleaved.
	Channels = 2
)

// toStereo maps interleaved samples to two channels: mono is
// duplicated and channels beyond the second are dropped.
func toStereo(samples []float64, channels int) ([]float32, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("waveform: invalid channel count %d", channels)
	}
	frames := len(samples) / channels
	out := make([]float32, frames*Channels)
	for i := 0; i < frames; i++ {
		left := samples[i*channels]
		right := left
		if channels > 1 {
			right = samples[i*channels+1]
		}
		out[i*2] = float32(left)
		out[i*2+1] = float32(right)
	}
	return out, nil
}

// convert turns a decoded chunk into 44.1kHz stereo samples.
func convert(samples []float64, format Format) ([]float64, error) {
	stereo, err := toStereo(samples, format.Channels)
	if err != nil {
		return nil, err
	}
	if format.SampleRate != SampleRate && len(stereo) > 0 {
		if format.SampleRate <= 0 {
			return nil, fmt.Errorf("waveform: invalid sample rate %d", format.SampleRate)
		}
		ratio := float64(SampleRate) / float64(format.SampleRate)
		stereo, err = gosamplerate.Simple(stereo, ratio, Channels, gosamplerate.SRC_SINC_BEST_QUALITY)
		if err != nil {
			return nil, fmt.Errorf("waveform: resample: %w", err)
		}
	}
	out := make([]float64, len(stereo))
	for i, sample := range stereo {
		out[i] = float64(sample)
	}
	return out, nil
}
