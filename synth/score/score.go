// Package score defines the declarative input for a synthesis run: a
// tempo, a composition mode, an optional global envelope and an ordered
// list of notes. Scores are validated eagerly and in full before any
// sample is generated, so a validation failure never leaves behind a
// partial buffer.
package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/synth/core"
	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/note"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Errors reported by score validation, in addition to the sentinels of
// the note, osc and envelope packages that validation wraps.
var (
	ErrInvalidTempo     = errors.New("score: bpm must be > 0")
	ErrInvalidAmplitude = errors.New("score: amplitude must be in [0, 1]")
	ErrInvalidTiming    = errors.New("score: invalid note timing")
)

// Mode selects how note timing is interpreted.
type Mode int

const (
	// ModeSequential plays notes back to back; each note carries a
	// duration in beats and starts when the previous one ends.
	ModeSequential Mode = iota
	// ModeTimeline places notes at absolute beat offsets; overlapping
	// notes are mixed together.
	ModeTimeline
)

// Note is one note of a score. ControlPoints selects a Bezier waveform
// when present; a nil slice means a pure sine. Beats is used in
// sequential mode, Start and Duration (both in beats) in timeline mode.
type Note struct {
	ID            note.ID
	Octave        int
	Amplitude     float64
	ControlPoints []float64
	Beats         float64
	Start         float64
	Duration      float64
}

// Score is the immutable input to a synthesis run.
type Score struct {
	BPM           float64
	Mode          Mode
	Envelope      envelope.Config
	ControlPoints []float64 // score-wide default waveform, nil means sine
	Notes         []Note
}

// SecondsPerBeat returns the length of one beat in seconds.
func (s *Score) SecondsPerBeat() float64 {
	return core.SecondsPerBeat(s.BPM)
}

// WaveformFor returns the control points in effect for n: the note's own
// set when present, otherwise the score-wide default. Nil means sine.
func (s *Score) WaveformFor(n Note) []float64 {
	if n.ControlPoints != nil {
		return n.ControlPoints
	}
	return s.ControlPoints
}

// Validate checks the whole score. An empty note list is valid and
// renders to an empty buffer. Errors carry the note index and field so
// the input can be fixed; they wrap the package sentinels for errors.Is.
func (s *Score) Validate() error {
	if s.BPM <= 0 || math.IsNaN(s.BPM) || math.IsInf(s.BPM, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidTempo, s.BPM)
	}

	if err := s.Envelope.Validate(); err != nil {
		return err
	}

	if s.ControlPoints != nil {
		if err := osc.ValidateControlPoints(s.ControlPoints); err != nil {
			return fmt.Errorf("score: control_points: %w", err)
		}
	}

	for i, n := range s.Notes {
		if err := s.validateNote(n); err != nil {
			return fmt.Errorf("score: note %d: %w", i, err)
		}
	}

	return nil
}

func (s *Score) validateNote(n Note) error {
	if !n.ID.Valid() {
		return fmt.Errorf("%w: %d", note.ErrInvalidID, int(n.ID))
	}

	if n.Amplitude < 0 || n.Amplitude > 1 || math.IsNaN(n.Amplitude) {
		return fmt.Errorf("%w: %f", ErrInvalidAmplitude, n.Amplitude)
	}

	if n.ControlPoints != nil {
		if err := osc.ValidateControlPoints(n.ControlPoints); err != nil {
			return err
		}
	}

	switch s.Mode {
	case ModeTimeline:
		if n.Start < 0 || math.IsNaN(n.Start) || math.IsInf(n.Start, 0) {
			return fmt.Errorf("%w: start_time must be >= 0: %f", ErrInvalidTiming, n.Start)
		}
		if n.Duration <= 0 || math.IsNaN(n.Duration) || math.IsInf(n.Duration, 0) {
			return fmt.Errorf("%w: duration must be > 0: %f", ErrInvalidTiming, n.Duration)
		}
	default:
		if n.Beats <= 0 || math.IsNaN(n.Beats) || math.IsInf(n.Beats, 0) {
			return fmt.Errorf("%w: beats must be > 0: %f", ErrInvalidTiming, n.Beats)
		}
	}

	return nil
}
