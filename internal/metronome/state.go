package metronome

// Intent is a discrete user action delivered by the presentation layer.
// The set is closed: no other inputs ever reach the state.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentToggleMode
	IntentPlay
)

// String returns a stable name for logging.
func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentToggleMode:
		return "toggle_mode"
	case IntentPlay:
		return "play"
	default:
		return "unknown"
	}
}

const (
	DefaultTempo = 120
	DefaultBeats = 4

	// Beats cycles through [BeatsMin, BeatsMax] inclusive, wrapping at
	// both ends.
	BeatsMin = 0
	BeatsMax = 8
)

// State holds the metronome counters and the edit-mode flag.
//
// Tempo is intentionally unbounded in both directions while Beats wraps
// within [0, 8]. The asymmetry is the observed product behavior; do not
// add a tempo floor or ceiling here.
type State struct {
	Tempo     int
	Beats     int
	TempoMode bool
}

// NewState returns the startup state: 120 BPM, 4 beats, tempo mode.
func NewState() *State {
	return &State{
		Tempo:     DefaultTempo,
		Beats:     DefaultBeats,
		TempoMode: true,
	}
}

// Up increments the counter selected by the current mode.
func (s *State) Up() {
	if s.TempoMode {
		s.Tempo++
		return
	}
	if s.Beats < BeatsMax {
		s.Beats++
	} else {
		s.Beats = BeatsMin
	}
}

// Down decrements the counter selected by the current mode.
func (s *State) Down() {
	if s.TempoMode {
		s.Tempo--
		return
	}
	if s.Beats > BeatsMin {
		s.Beats--
	} else {
		s.Beats = BeatsMax
	}
}

// ToggleMode switches Up/Down between tempo and beats editing.
func (s *State) ToggleMode() {
	s.TempoMode = !s.TempoMode
}

// Play is reserved for playback scheduling and currently does nothing.
func (s *State) Play() {
}

// Apply dispatches an intent to the matching operation. Every intent is
// total: there is no failure path.
func (s *State) Apply(intent Intent) {
	switch intent {
	case IntentUp:
		s.Up()
	case IntentDown:
		s.Down()
	case IntentToggleMode:
		s.ToggleMode()
	case IntentPlay:
		s.Play()
	}
}

// Snapshot returns a copy for rendering.
func (s *State) Snapshot() State {
	return *s
}
