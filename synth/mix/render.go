package mix

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/synth/envelope"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Event is one note placed on the mix time axis. Start and Duration are
// in seconds; Start is ignored in sequential mode, where each note begins
// immediately after the previous one.
type Event struct {
	Osc      *osc.Oscillator
	Start    float64
	Duration float64
}

func (m *Mixer) validateEvent(i int, ev Event) error {
	if ev.Osc == nil {
		return fmt.Errorf("mix: event %d has no oscillator", i)
	}
	if ev.Duration <= 0 || math.IsNaN(ev.Duration) || math.IsInf(ev.Duration, 0) {
		return fmt.Errorf("mix: event %d duration must be > 0 and finite: %f", i, ev.Duration)
	}
	if ev.Start < 0 || math.IsNaN(ev.Start) || math.IsInf(ev.Start, 0) {
		return fmt.Errorf("mix: event %d start must be >= 0 and finite: %f", i, ev.Start)
	}
	if sr := ev.Osc.SampleRate(); sr != m.cfg.SampleRate {
		return fmt.Errorf("mix: event %d oscillator sample rate %v does not match mixer sample rate %v",
			i, sr, m.cfg.SampleRate)
	}
	return nil
}

// Sequential concatenates the events into one buffer with no overlap and
// no envelope. Each note occupies trunc(duration * sample rate) samples
// and its oscillator restarts at index 0. An empty event list yields an
// empty buffer.
func (m *Mixer) Sequential(events []Event) ([]float64, error) {
	lengths := make([]int, len(events))
	total := 0
	for i, ev := range events {
		if err := m.validateEvent(i, ev); err != nil {
			return nil, err
		}
		lengths[i] = int(ev.Duration * m.cfg.SampleRate)
		total += lengths[i]
	}

	out := make([]float64, total)
	offset := 0
	for i, ev := range events {
		ev.Osc.Render(out[offset : offset+lengths[i]])
		offset += lengths[i]
	}
	return out, nil
}

// Timeline accumulates the events into one master buffer at their
// absolute offsets, shaping each note with the given envelope. The buffer
// is sized once, up front, to the furthest-reaching note including its
// release tail. Overlapping notes sum; after accumulation the whole
// buffer is scaled by the headroom gain and passed through the clipper.
// An empty event list yields an empty buffer.
func (m *Mixer) Timeline(events []Event, env envelope.Config) ([]float64, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	shapers := make([]*envelope.Shaper, len(events))
	starts := make([]int, len(events))
	total := 0
	maxLen := 0
	for i, ev := range events {
		if err := m.validateEvent(i, ev); err != nil {
			return nil, err
		}

		sh, err := envelope.New(env, ev.Duration, m.cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("mix: event %d: %w", i, err)
		}
		shapers[i] = sh
		starts[i] = int(ev.Start * m.cfg.SampleRate)

		n := sh.TotalSamples()
		if n > maxLen {
			maxLen = n
		}
		if end := starts[i] + n; end > total {
			total = end
		}
	}

	master := make([]float64, total)
	block := make([]float64, maxLen)
	gain := make([]float64, maxLen)

	for i, ev := range events {
		n := shapers[i].TotalSamples()

		blk := block[:n]
		ev.Osc.Render(blk)
		shapers[i].RenderGain(gain[:n])
		vecmath.MulBlockInPlace(blk, gain[:n])

		seg := master[starts[i] : starts[i]+n]
		vecmath.AddBlockInPlace(seg, blk)
	}

	vecmath.ScaleBlockInPlace(master, m.headroom)
	for i, v := range master {
		master[i] = m.clip(v)
	}
	return master, nil
}

// Tone renders a single oscillator for the given number of seconds with
// no envelope and no clipping. It is the one-shot path used for preview
// tones.
func (m *Mixer) Tone(o *osc.Oscillator, seconds float64) ([]float64, error) {
	return m.Sequential([]Event{{Osc: o, Duration: seconds}})
}
