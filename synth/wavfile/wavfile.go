// Package wavfile writes rendered PCM buffers to RIFF/WAVE containers.
//
// Output is always mono 16-bit PCM: a 12-byte RIFF header, a 16-byte
// "fmt " chunk body and a "data" chunk holding the little-endian
// samples. An empty buffer produces a valid 44-byte file with a
// zero-length data chunk.
package wavfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// NumChannels is fixed: output is monophonic.
	NumChannels = 1
	// BitDepth is fixed at 16-bit PCM.
	BitDepth = 16

	pcmFormat = 1
)

// Encode writes samples as a mono 16-bit PCM WAV stream to w. The writer
// must support seeking: the RIFF and data chunk sizes are patched in
// once the sample count is final.
func Encode(w io.WriteSeeker, samples []int16, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: sample rate must be > 0: %d", sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, BitDepth, NumChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: BitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: finalize container: %w", err)
	}
	return nil
}

// WriteFile writes samples to a WAV file at path, creating parent
// directories as needed.
func WriteFile(path string, samples []int16, sampleRate int) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("wavfile: create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: create file: %w", err)
	}

	if err := Encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("wavfile: close file: %w", err)
	}
	return nil
}
