package waveform

// LoadState is the progress of a waveform load. States only move
// forward, and Complete and Error are final.
type LoadState int

const (
	StateSpawning LoadState = iota
	StateOpening
	StateReading
	StateComplete
	StateError
)

func (s LoadState) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateOpening:
		return "Opening"
	case StateReading:
		return "Reading"
	case StateComplete:
		return "Complete"
	case StateError:
		return "Error"
	}
	return "Unknown"
}

// Terminal reports whether no further transitions are possible.
func (s LoadState) Terminal() bool {
	return s == StateComplete || s == StateError
}

// canTransition reports whether moving from s to next is allowed:
// one step forward, or straight to Error, and never out of a final
// state.
func (s LoadState) canTransition(next LoadState) bool {
	if s.Terminal() {
		return false
	}
	return next == s+1 || next == StateError
}
