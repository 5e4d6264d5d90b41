// Package mix combines per-note waveforms into a single master buffer.
//
// Two composition modes are supported. Sequential mode concatenates notes
// back to back with no overlap and no envelope. Timeline mode places
// notes at absolute offsets and sums overlapping regions, then applies a
// fixed headroom reduction followed by a soft-clip nonlinearity so that
// overlapping notes stay within the [-1, 1] sample range.
package mix

import (
	"math"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-synth/synth/core"
)

// DefaultHeadroom is the gain applied to the summed timeline before soft
// clipping.
const DefaultHeadroom = 0.9

// Clipper maps a raw mixed sample to its bounded output value.
type Clipper func(float64) float64

// SoftClip is the exact tanh soft clipper; it compresses values smoothly
// toward +-1 without the discontinuity of a hard clamp.
func SoftClip(x float64) float64 {
	return math.Tanh(x)
}

// FastSoftClip approximates SoftClip using algo-approx's fast exponential.
// The error against math.Tanh is small compared to 16-bit quantization,
// so it is a drop-in for offline rendering of large mixes.
func FastSoftClip(x float64) float64 {
	return 1 - 2/(approx.FastExp(2*x)+1)
}

// HardClip clamps to [-1, 1]. Provided for comparison and tests; timeline
// rendering defaults to SoftClip.
func HardClip(x float64) float64 {
	return core.Clamp(x, -1, 1)
}

// Option configures a Mixer beyond the shared rendering options.
type Option func(*Mixer)

// WithHeadroom sets the pre-clip gain. Values outside (0, 1] are ignored.
func WithHeadroom(headroom float64) Option {
	return func(m *Mixer) {
		if headroom > 0 && headroom <= 1 {
			m.headroom = headroom
		}
	}
}

// WithClipper sets the soft-clip transfer function.
func WithClipper(clip Clipper) Option {
	return func(m *Mixer) {
		if clip != nil {
			m.clip = clip
		}
	}
}

// Mixer renders notes into master sample buffers.
type Mixer struct {
	cfg      core.RenderConfig
	headroom float64
	clip     Clipper
}

// NewMixer creates a Mixer with the default headroom and exact tanh
// soft clipping.
func NewMixer(opts ...core.RenderOption) *Mixer {
	return &Mixer{
		cfg:      core.ApplyRenderOptions(opts...),
		headroom: DefaultHeadroom,
		clip:     SoftClip,
	}
}

// NewMixerWithOptions creates a Mixer with mixer-specific options applied
// on top of the shared rendering options.
func NewMixerWithOptions(coreOpts []core.RenderOption, opts ...Option) *Mixer {
	m := NewMixer(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// SampleRate returns the mixer's rendering sample rate.
func (m *Mixer) SampleRate() float64 {
	return m.cfg.SampleRate
}

// Headroom returns the pre-clip gain.
func (m *Mixer) Headroom() float64 {
	return m.headroom
}
