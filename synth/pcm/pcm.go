// Package pcm converts float sample buffers to signed 16-bit PCM.
package pcm

import "github.com/cwbudde/algo-synth/synth/core"

// Scale16 is the full-scale magnitude of a 16-bit sample.
const Scale16 = 32767.0

// Quantize converts one float sample to int16. The input is clamped to
// [-1, 1] before scaling; clamping first guarantees the scaled value
// cannot leave the int16 range even if the mix stage overshoots.
func Quantize(sample float64) int16 {
	clamped := core.Clamp(sample, -1, 1)
	return int16(clamped * Scale16)
}

// QuantizeBuffer converts a whole buffer, one int16 per input sample.
func QuantizeBuffer(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = Quantize(s)
	}
	return out
}

// Dequantize maps an int16 sample back to a float in [-1, 1].
func Dequantize(sample int16) float64 {
	return float64(sample) / Scale16
}
