// Package render drives the synthesis pipeline: it resolves each score
// note to an oscillator, hands the notes to the mixer for the score's
// composition mode, and quantizes the master buffer to 16-bit PCM.
//
// Rendering is a single-threaded batch computation. The same score and
// configuration always produce bit-identical output.
package render

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/core"
	"github.com/cwbudde/algo-synth/synth/mix"
	"github.com/cwbudde/algo-synth/synth/note"
	"github.com/cwbudde/algo-synth/synth/osc"
	"github.com/cwbudde/algo-synth/synth/pcm"
	"github.com/cwbudde/algo-synth/synth/score"
)

// Samples renders a score to the float master buffer using a default
// mixer (0.9 headroom, tanh soft clip in timeline mode).
func Samples(sc *score.Score, opts ...core.RenderOption) ([]float64, error) {
	return SamplesWithMixer(sc, mix.NewMixer(opts...))
}

// SamplesWithMixer renders a score through a caller-configured mixer.
// The score is validated in full before any sample is generated.
func SamplesWithMixer(sc *score.Score, m *mix.Mixer) ([]float64, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	spb := sc.SecondsPerBeat()
	events := make([]mix.Event, len(sc.Notes))
	for i, n := range sc.Notes {
		o, err := oscillatorFor(sc, n, m.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("render: note %d: %w", i, err)
		}

		switch sc.Mode {
		case score.ModeTimeline:
			events[i] = mix.Event{Osc: o, Start: n.Start * spb, Duration: n.Duration * spb}
		default:
			events[i] = mix.Event{Osc: o, Duration: n.Beats * spb}
		}
	}

	if sc.Mode == score.ModeTimeline {
		return m.Timeline(events, sc.Envelope)
	}
	return m.Sequential(events)
}

// PCM16 renders a score all the way to signed 16-bit PCM samples, ready
// for a WAV container writer.
func PCM16(sc *score.Score, opts ...core.RenderOption) ([]int16, error) {
	samples, err := Samples(sc, opts...)
	if err != nil {
		return nil, err
	}
	return pcm.QuantizeBuffer(samples), nil
}

// Tone renders a single oscillator for the given number of seconds and
// quantizes it, with no envelope and no mixing. It covers the one-shot
// preview path.
func Tone(o *osc.Oscillator, seconds float64) ([]int16, error) {
	m := mix.NewMixer(core.WithSampleRate(o.SampleRate()))
	samples, err := m.Tone(o, seconds)
	if err != nil {
		return nil, err
	}
	return pcm.QuantizeBuffer(samples), nil
}

func oscillatorFor(sc *score.Score, n score.Note, sampleRate float64) (*osc.Oscillator, error) {
	freq, err := note.Frequency(n.ID, n.Octave)
	if err != nil {
		return nil, err
	}

	if points := sc.WaveformFor(n); points != nil {
		return osc.NewBezier(freq, n.Amplitude, sampleRate, points)
	}
	return osc.NewSine(freq, n.Amplitude, sampleRate)
}
