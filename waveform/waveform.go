// Package waveform loads audio files on a background goroutine into
// 44.1kHz stereo float64 samples, publishing its progress as a
// LoadState that the render loop can poll every frame.
package waveform

import (
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Waveform is an audio file being loaded. All methods are safe to call
// from any goroutine while the load is in progress.
type Waveform struct {
	path string
	open OpenFunc

	mu      sync.RWMutex
	state   LoadState
	err     error
	samples []float64
	done    chan struct{}
}

// Load starts loading the file at path with Open.
func Load(path string) *Waveform {
	return LoadWith(path, Open)
}

// LoadWith starts loading the file at path with the given decoder opener.
func LoadWith(path string, open OpenFunc) *Waveform {
	w := &Waveform{
		path:  path,
		open:  open,
		state: StateSpawning,
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// Path returns the path being loaded.
func (w *Waveform) Path() string { return w.path }

// State returns the current load state.
func (w *Waveform) State() LoadState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Err returns the load error once the state is StateError.
func (w *Waveform) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.err
}

// Frames returns the number of stereo frames decoded so far.
func (w *Waveform) Frames() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.samples) / Channels
}

// Done returns a channel closed when the load reaches a final state.
func (w *Waveform) Done() <-chan struct{} { return w.done }

// Wait blocks until the load finishes and returns its error, if any.
func (w *Waveform) Wait() error {
	<-w.done
	return w.Err()
}

func (w *Waveform) setState(next LoadState) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.state.canTransition(next) {
		glog.Warningf("waveform %s: ignoring transition %s -> %s", w.path, w.state, next)
		return false
	}
	glog.Infof("waveform %s: %s -> %s", w.path, w.state, next)
	w.state = next
	return true
}

func (w *Waveform) fail(err error) {
	w.mu.Lock()
	if w.state.Terminal() {
		w.mu.Unlock()
		return
	}
	w.err = err
	w.state = StateError
	w.mu.Unlock()
	glog.Errorf("waveform %s: %v", w.path, err)
}

func (w *Waveform) run() {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			w.fail(fmt.Errorf("waveform: decoder panic: %v", r))
		}
	}()

	w.setState(StateOpening)
	decoder, err := w.open(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	defer decoder.Close()

	w.setState(StateReading)
	format := decoder.Format()
	for {
		chunk, err := decoder.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			w.fail(fmt.Errorf("waveform: read %s: %w", w.path, err))
			return
		}
		converted, err := convert(chunk, format)
		if err != nil {
			w.fail(err)
			return
		}
		w.mu.Lock()
		w.samples = append(w.samples, converted...)
		w.mu.Unlock()
	}
	w.setState(StateComplete)
}

// Peak is the sample range of a span of frames, over both channels.
type Peak struct {
	Min, Max float64
}

// Peaks summarizes the loaded samples in at most bins spans of equal
// length. It returns nil until the load is complete.
func (w *Waveform) Peaks(bins int) []Peak {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.state != StateComplete || bins <= 0 {
		return nil
	}
	frames := len(w.samples) / Channels
	if frames == 0 {
		return nil
	}
	if bins > frames {
		bins = frames
	}

	peaks := make([]Peak, bins)
	for i := range peaks {
		start := i * frames / bins
		end := (i + 1) * frames / bins
		span := w.samples[start*Channels : end*Channels]
		peaks[i] = Peak{Min: floats.Min(span), Max: floats.Max(span)}
	}
	return peaks
}
