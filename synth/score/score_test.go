package score

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/note"
	"github.com/cwbudde/algo-synth/synth/osc"
)

func validSequential() *Score {
	return &Score{
		BPM:      120,
		Envelope: envelope.DefaultConfig(),
		Notes: []Note{
			{ID: note.A, Octave: 4, Amplitude: 1, Beats: 1},
			{ID: note.C, Octave: 4, Amplitude: 0.5, Beats: 2},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validSequential().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestEmptyScoreIsValid(t *testing.T) {
	s := &Score{BPM: 120, Envelope: envelope.DefaultConfig()}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for empty note list", err)
	}
}

func TestValidateRejectsTempo(t *testing.T) {
	s := validSequential()
	s.BPM = 0
	if err := s.Validate(); !errors.Is(err, ErrInvalidTempo) {
		t.Fatalf("Validate() = %v, want ErrInvalidTempo", err)
	}
}

func TestValidateRejectsNoteID(t *testing.T) {
	s := validSequential()
	s.Notes[1].ID = 12
	if err := s.Validate(); !errors.Is(err, note.ErrInvalidID) {
		t.Fatalf("Validate() = %v, want note.ErrInvalidID", err)
	}
}

func TestValidateRejectsAmplitude(t *testing.T) {
	s := validSequential()
	s.Notes[0].Amplitude = 1.2
	if err := s.Validate(); !errors.Is(err, ErrInvalidAmplitude) {
		t.Fatalf("Validate() = %v, want ErrInvalidAmplitude", err)
	}
}

func TestValidateRejectsWaveform(t *testing.T) {
	s := validSequential()
	s.Notes[0].ControlPoints = []float64{2.0, 0, 0, 0}
	if err := s.Validate(); !errors.Is(err, osc.ErrInvalidWaveform) {
		t.Fatalf("Validate() = %v, want osc.ErrInvalidWaveform", err)
	}
}

func TestValidateRejectsEnvelope(t *testing.T) {
	s := validSequential()
	s.Envelope.Sustain = -0.5
	if err := s.Validate(); !errors.Is(err, envelope.ErrInvalid) {
		t.Fatalf("Validate() = %v, want envelope.ErrInvalid", err)
	}
}

func TestValidateSequentialTiming(t *testing.T) {
	s := validSequential()
	s.Notes[0].Beats = 0
	if err := s.Validate(); !errors.Is(err, ErrInvalidTiming) {
		t.Fatalf("Validate() = %v, want ErrInvalidTiming", err)
	}
}

func TestValidateTimelineTiming(t *testing.T) {
	s := &Score{
		BPM:      60,
		Mode:     ModeTimeline,
		Envelope: envelope.DefaultConfig(),
		Notes:    []Note{{ID: note.A, Octave: 4, Amplitude: 1, Start: -1, Duration: 1}},
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidTiming) {
		t.Fatalf("Validate() = %v, want ErrInvalidTiming for negative start", err)
	}

	s.Notes[0].Start = 0
	s.Notes[0].Duration = 0
	if err := s.Validate(); !errors.Is(err, ErrInvalidTiming) {
		t.Fatalf("Validate() = %v, want ErrInvalidTiming for zero duration", err)
	}

	s.Notes[0].Duration = 1
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestWaveformForPrefersNoteOverride(t *testing.T) {
	s := validSequential()
	s.ControlPoints = []float64{0, 0, 0, 0}
	s.Notes[0].ControlPoints = []float64{1, 1, 1, 1}

	if got := s.WaveformFor(s.Notes[0]); got[0] != 1 {
		t.Fatalf("WaveformFor(note 0) = %v, want note override", got)
	}
	if got := s.WaveformFor(s.Notes[1]); got == nil || got[0] != 0 {
		t.Fatalf("WaveformFor(note 1) = %v, want score default", got)
	}
}

func TestSecondsPerBeat(t *testing.T) {
	s := validSequential()
	if got := s.SecondsPerBeat(); got != 0.5 {
		t.Fatalf("SecondsPerBeat() = %v, want 0.5", got)
	}
}
