// Package osc provides the oscillators used by the synthesiser: a pure
// sine wave and a periodic wave shaped by a cubic Bezier curve.
//
// Oscillators are stateless; every sample is evaluated directly from the
// sample index, so rendering is deterministic and order-independent.
package osc

import (
	"errors"
	"fmt"
	"math"
)

// Shape selects the oscillator waveform. The set is closed: evaluation
// switches exhaustively over it.
type Shape int

const (
	// ShapeSine is a pure sine wave.
	ShapeSine Shape = iota
	// ShapeBezier is a periodic wave tracing a cubic Bezier curve once
	// per cycle.
	ShapeBezier
)

// ControlPointCount is the number of Y control points a Bezier waveform
// requires. The X positions are fixed at 0, 1/3, 2/3 and 1.
const ControlPointCount = 4

// Errors reported by oscillator construction and validation.
var (
	ErrInvalidFrequency = errors.New("osc: frequency must be positive and finite")
	ErrInvalidWaveform  = errors.New("osc: invalid bezier control points")
)

// Oscillator produces raw waveform samples in [-amplitude, amplitude] for
// a fixed frequency at a fixed sample rate.
type Oscillator struct {
	shape      Shape
	points     [ControlPointCount]float64
	frequency  float64
	amplitude  float64
	sampleRate float64
}

// NewSine creates a sine oscillator.
func NewSine(frequency, amplitude, sampleRate float64) (*Oscillator, error) {
	return newOscillator(ShapeSine, frequency, amplitude, sampleRate)
}

// NewBezier creates a Bezier oscillator from exactly 4 Y control points,
// each in [-1, 1]. A curve whose first and last control points differ
// jumps at every cycle boundary when the phase wraps; the discontinuity
// is part of the waveform, not corrected here.
func NewBezier(frequency, amplitude, sampleRate float64, points []float64) (*Oscillator, error) {
	if err := ValidateControlPoints(points); err != nil {
		return nil, err
	}

	o, err := newOscillator(ShapeBezier, frequency, amplitude, sampleRate)
	if err != nil {
		return nil, err
	}

	copy(o.points[:], points)
	return o, nil
}

func newOscillator(shape Shape, frequency, amplitude, sampleRate float64) (*Oscillator, error) {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidFrequency, frequency)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("osc: sample rate must be > 0: %f", sampleRate)
	}

	return &Oscillator{
		shape:      shape,
		frequency:  frequency,
		amplitude:  amplitude,
		sampleRate: sampleRate,
	}, nil
}

// ValidateControlPoints checks Bezier control points: exactly 4 values,
// each in [-1, 1].
func ValidateControlPoints(points []float64) error {
	if len(points) != ControlPointCount {
		return fmt.Errorf("%w: expected %d control points, got %d",
			ErrInvalidWaveform, ControlPointCount, len(points))
	}

	for i, p := range points {
		if p < -1 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%w: control point %d is %v, must be in [-1, 1]",
				ErrInvalidWaveform, i, p)
		}
	}

	return nil
}

// Shape returns the oscillator waveform.
func (o *Oscillator) Shape() Shape {
	return o.shape
}

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// Amplitude returns the peak amplitude the waveform is scaled to.
func (o *Oscillator) Amplitude() float64 {
	return o.amplitude
}

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 {
	return o.sampleRate
}

// Sample evaluates the waveform at the given sample index. Index 0 is the
// start of the waveform's own time axis.
func (o *Oscillator) Sample(index int) float64 {
	switch o.shape {
	case ShapeSine:
		t := float64(index) / o.sampleRate
		return o.amplitude * math.Sin(2*math.Pi*o.frequency*t)
	case ShapeBezier:
		return o.amplitude * bezierPoint(o.points, o.phase(index))
	default:
		panic(fmt.Sprintf("osc: unknown shape %d", o.shape))
	}
}

// Render fills dst with consecutive samples starting at index 0.
func (o *Oscillator) Render(dst []float64) {
	for i := range dst {
		dst[i] = o.Sample(i)
	}
}

// phase returns the fractional position within the current cycle, in [0, 1).
func (o *Oscillator) phase(index int) float64 {
	p := float64(index) * o.frequency / o.sampleRate
	return p - math.Floor(p)
}

// bezierPoint evaluates the cubic Bernstein blend of the four Y control
// points at parameter t in [0, 1].
func bezierPoint(p [ControlPointCount]float64, t float64) float64 {
	u := 1 - t
	return u*u*u*p[0] + 3*u*u*t*p[1] + 3*u*t*t*p[2] + t*t*t*p[3]
}
