// Package envelope implements ADSR amplitude shaping as a pure function
// of elapsed time.
//
// The envelope progresses Attack -> Decay -> Sustain -> Release -> Silent
// along a note's own time axis. The phase is derived arithmetically from
// the elapsed sample count rather than stored, so a Shaper can be
// evaluated at any index in any order and always yields the same gain.
// The rendered region is duration + release: the release tail extends
// past the nominal note duration so the fade-out is not cut off.
package envelope

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid reports an envelope configuration outside its legal ranges.
var ErrInvalid = errors.New("envelope: invalid configuration")

// Config holds ADSR parameters. Times are in seconds, sustain is a level
// in [0, 1]. The zero-value phases collapse instantly, so DefaultConfig
// (attack=decay=release=0, sustain=1) is the identity envelope: gain 1
// for the note's nominal duration, then silence.
type Config struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// DefaultConfig returns the identity envelope.
func DefaultConfig() Config {
	return Config{Sustain: 1}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.Attack < 0 || math.IsNaN(c.Attack) {
		return fmt.Errorf("%w: attack must be >= 0: %f", ErrInvalid, c.Attack)
	}
	if c.Decay < 0 || math.IsNaN(c.Decay) {
		return fmt.Errorf("%w: decay must be >= 0: %f", ErrInvalid, c.Decay)
	}
	if c.Release < 0 || math.IsNaN(c.Release) {
		return fmt.Errorf("%w: release must be >= 0: %f", ErrInvalid, c.Release)
	}
	if c.Sustain < 0 || c.Sustain > 1 || math.IsNaN(c.Sustain) {
		return fmt.Errorf("%w: sustain must be in [0, 1]: %f", ErrInvalid, c.Sustain)
	}
	return nil
}

// Phase is the envelope state at a point in time.
type Phase int

const (
	PhaseAttack Phase = iota
	PhaseDecay
	PhaseSustain
	PhaseRelease
	PhaseSilent
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAttack:
		return "attack"
	case PhaseDecay:
		return "decay"
	case PhaseSustain:
		return "sustain"
	case PhaseRelease:
		return "release"
	default:
		return "silent"
	}
}

// Shaper evaluates the envelope for one note of fixed nominal duration.
type Shaper struct {
	cfg        Config
	duration   float64 // nominal note duration in seconds
	sampleRate float64
}

// New creates a Shaper for a note lasting duration seconds.
func New(cfg Config, duration, sampleRate float64) (*Shaper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("envelope: duration must be > 0 and finite: %f", duration)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("envelope: sample rate must be > 0: %f", sampleRate)
	}

	return &Shaper{cfg: cfg, duration: duration, sampleRate: sampleRate}, nil
}

// TotalSamples returns the number of samples the envelope spans, including
// the release tail past the nominal duration.
func (s *Shaper) TotalSamples() int {
	return int(math.Ceil((s.duration + s.cfg.Release) * s.sampleRate))
}

// PhaseAt returns the envelope phase at the given sample index relative to
// the note start.
func (s *Shaper) PhaseAt(index int) Phase {
	t := float64(index) / s.sampleRate
	switch {
	case t < s.cfg.Attack && t < s.duration:
		return PhaseAttack
	case t < s.cfg.Attack+s.cfg.Decay && t < s.duration:
		return PhaseDecay
	case t < s.duration:
		return PhaseSustain
	case t < s.duration+s.cfg.Release:
		return PhaseRelease
	default:
		return PhaseSilent
	}
}

// GainAt returns the amplitude multiplier in [0, 1] at the given sample
// index relative to the note start.
func (s *Shaper) GainAt(index int) float64 {
	t := float64(index) / s.sampleRate
	switch {
	case t < s.duration:
		return s.nominalGain(t)
	case t < s.duration+s.cfg.Release:
		// Linear ramp from the level held when the release began.
		return s.nominalGain(s.duration) * (1 - (t-s.duration)/s.cfg.Release)
	default:
		return 0
	}
}

// RenderGain fills dst with consecutive gain values starting at index 0.
func (s *Shaper) RenderGain(dst []float64) {
	for i := range dst {
		dst[i] = s.GainAt(i)
	}
}

// nominalGain evaluates the attack/decay/sustain portion at time t, before
// any release handling.
func (s *Shaper) nominalGain(t float64) float64 {
	switch {
	case t < s.cfg.Attack:
		return t / s.cfg.Attack
	case t < s.cfg.Attack+s.cfg.Decay:
		return 1 - (1-s.cfg.Sustain)*(t-s.cfg.Attack)/s.cfg.Decay
	default:
		return s.cfg.Sustain
	}
}
