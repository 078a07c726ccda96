package waveform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupportedFormat is returned by Open for unknown file extensions
// and undecodable headers.
var ErrUnsupportedFormat = errors.New("waveform: unsupported audio format")

// chunkFrames is the number of frames decoded per Next call.
const chunkFrames = 16384

// Format describes decoded samples.
type Format struct {
	SampleRate int
	Channels   int
}

// Decoder yields interleaved float64 samples in [-1, 1] in the
// source format, one finite chunk at a time. Next returns io.EOF
// after the last chunk.
type Decoder interface {
	Format() Format
	Next() ([]float64, error)
	Close() error
}

// OpenFunc opens a decoder for a path.
type OpenFunc func(path string) (Decoder, error)

// Open picks a decoder by file extension: .wav or .mp3.
func Open(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" && ext != ".mp3" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}
	var decoder Decoder
	if ext == ".wav" {
		decoder, err = newWAVDecoder(f)
	} else {
		decoder, err = newMP3Decoder(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("waveform: %s: %w", path, err)
	}
	return decoder, nil
}

type wavDecoder struct {
	file    *os.File
	decoder *wav.Decoder
	format  Format
	offset  float64 // 8-bit PCM is unsigned
	factor  float64
	buf     *audio.IntBuffer
}

func newWAVDecoder(f *os.File) (*wavDecoder, error) {
	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: invalid WAV file", ErrUnsupportedFormat)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return nil, err
	}
	format := decoder.Format()
	bitDepth := int(decoder.SampleBitDepth())
	if bitDepth == 0 || format.NumChannels == 0 {
		return nil, fmt.Errorf("%w: unknown WAV sample layout", ErrUnsupportedFormat)
	}
	var offset float64
	if bitDepth == 8 {
		offset = 128
	}
	return &wavDecoder{
		file:    f,
		decoder: decoder,
		format:  Format{SampleRate: format.SampleRate, Channels: format.NumChannels},
		offset:  offset,
		factor:  math.Pow(2, float64(bitDepth-1)),
		buf: &audio.IntBuffer{
			Format:         format,
			Data:           make([]int, chunkFrames*format.NumChannels),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (d *wavDecoder) Format() Format { return d.format }

func (d *wavDecoder) Next() ([]float64, error) {
	n, err := d.decoder.PCMBuffer(d.buf)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}
	chunk := &audio.IntBuffer{Format: d.buf.Format, Data: d.buf.Data[:n]}
	samples := chunk.AsFloatBuffer().Data
	for i := range samples {
		samples[i] = (samples[i] - d.offset) / d.factor
	}
	return samples, nil
}

func (d *wavDecoder) Close() error { return d.file.Close() }

// mp3Decoder reads go-mp3 output, which is always 16-bit
// little endian stereo.
type mp3Decoder struct {
	file    *os.File
	decoder *mp3.Decoder
	raw     []byte
}

func newMP3Decoder(f *os.File) (*mp3Decoder, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	return &mp3Decoder{
		file:    f,
		decoder: decoder,
		raw:     make([]byte, chunkFrames*4),
	}, nil
}

func (d *mp3Decoder) Format() Format {
	return Format{SampleRate: d.decoder.SampleRate(), Channels: 2}
}

func (d *mp3Decoder) Next() ([]float64, error) {
	n, err := io.ReadFull(d.decoder, d.raw)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	nsamples := n / 2
	if nsamples == 0 {
		return nil, io.EOF
	}
	samples := make([]float64, nsamples)
	for i := range samples {
		sample := int16(binary.LittleEndian.Uint16(d.raw[i*2:]))
		samples[i] = float64(sample) / 32768
	}
	return samples, nil
}

func (d *mp3Decoder) Close() error { return d.file.Close() }
