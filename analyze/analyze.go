// Package analyze computes diagnostics on rendered sample buffers: peak
// level, RMS level and the dominant spectral component. It backs the CLI
// -stats output and spectral assertions in tests; it is not part of the
// rendering path.
package analyze

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Peak returns the maximum absolute sample value, 0 for an empty buffer.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return vecmath.MaxAbs(samples)
}

// RMS returns the root-mean-square level, 0 for an empty buffer.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(samples, samples) / float64(len(samples)))
}

// DominantFrequency estimates the strongest spectral component of the
// buffer in Hz. The signal is zero-padded to the next power of two, so
// frequency resolution is sampleRate / fftSize. An empty buffer returns
// 0; a constant (DC-dominated) buffer also reports 0 Hz, which is the
// correct bin.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("analyze: sample rate must be > 0: %f", sampleRate)
	}
	if len(samples) == 0 {
		return 0, nil
	}

	fftSize := nextPow2(len(samples))
	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("analyze: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("analyze: fft: %w", err)
	}

	// Only the non-negative frequency half is meaningful for real input.
	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	peakBin := 0
	peakVal := power[0]
	for i, p := range power {
		if p > peakVal {
			peakVal = p
			peakBin = i
		}
	}

	return float64(peakBin) * sampleRate / float64(fftSize), nil
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
