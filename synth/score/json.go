package score

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/note"
)

// JSON wire format:
//
//	{
//	  "bpm": 120,
//	  "timeline": true,
//	  "adsr": {"attack": 0.01, "decay": 0.1, "sustain": 0.8, "release": 0.2},
//	  "control_points": [0.0, 1.0, -1.0, 0.0],
//	  "notes": [
//	    {"id": 9, "octave": 4, "amplitude": 1.0, "start_time": 0, "duration": 2},
//	    {"id": 0, "octave": 4, "amplitude": 0.8, "beats": 1}
//	  ]
//	}
//
// The timeline flag selects absolute-timeline mode, in which notes carry
// start_time and duration; without it notes carry beats and play
// sequentially. adsr and control_points are optional; per-note
// control_points override the score-wide set.

type jsonScore struct {
	BPM           float64    `json:"bpm"`
	Timeline      bool       `json:"timeline"`
	ADSR          *jsonADSR  `json:"adsr"`
	ControlPoints []float64  `json:"control_points"`
	Notes         []jsonNote `json:"notes"`
}

// jsonADSR uses pointer fields so that omitted envelope parameters keep
// their defaults instead of collapsing to zero.
type jsonADSR struct {
	Attack  *float64 `json:"attack"`
	Decay   *float64 `json:"decay"`
	Sustain *float64 `json:"sustain"`
	Release *float64 `json:"release"`
}

type jsonNote struct {
	ID            int       `json:"id"`
	Octave        int       `json:"octave"`
	Amplitude     float64   `json:"amplitude"`
	ControlPoints []float64 `json:"control_points"`
	Beats         float64   `json:"beats"`
	Start         float64   `json:"start_time"`
	Duration      float64   `json:"duration"`
}

// Parse decodes and validates a JSON score.
func Parse(data []byte) (*Score, error) {
	var in jsonScore
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("score: parse json: %w", err)
	}
	return fromJSON(in)
}

// Decode reads, decodes and validates a JSON score from r.
func Decode(r io.Reader) (*Score, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("score: read input: %w", err)
	}
	return Parse(data)
}

func fromJSON(in jsonScore) (*Score, error) {
	s := &Score{
		BPM:           in.BPM,
		Envelope:      envelope.DefaultConfig(),
		ControlPoints: in.ControlPoints,
		Notes:         make([]Note, len(in.Notes)),
	}
	if in.Timeline {
		s.Mode = ModeTimeline
	}
	if in.ADSR != nil {
		if in.ADSR.Attack != nil {
			s.Envelope.Attack = *in.ADSR.Attack
		}
		if in.ADSR.Decay != nil {
			s.Envelope.Decay = *in.ADSR.Decay
		}
		if in.ADSR.Sustain != nil {
			s.Envelope.Sustain = *in.ADSR.Sustain
		}
		if in.ADSR.Release != nil {
			s.Envelope.Release = *in.ADSR.Release
		}
	}

	for i, n := range in.Notes {
		s.Notes[i] = Note{
			ID:            note.ID(n.ID),
			Octave:        n.Octave,
			Amplitude:     n.Amplitude,
			ControlPoints: n.ControlPoints,
			Beats:         n.Beats,
			Start:         n.Start,
			Duration:      n.Duration,
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
