package wavfile

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, samples []int16, rate int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteFile(path, samples, rate); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return data
}

func TestEmptyBufferProducesHeaderOnlyFile(t *testing.T) {
	data := writeTemp(t, nil, 44100)

	if len(data) != 44 {
		t.Fatalf("file size = %d, want 44 (header only)", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("bad container magic: % x", data[0:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 36 {
		t.Fatalf("RIFF size = %d, want 36", got)
	}
	if string(data[36:40]) != "data" {
		t.Fatalf("data chunk id = %q", data[36:40])
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != 0 {
		t.Fatalf("data chunk size = %d, want 0", got)
	}
}

func TestHeaderFields(t *testing.T) {
	data := writeTemp(t, []int16{0, 100, -100}, 44100)

	if string(data[12:16]) != "fmt " {
		t.Fatalf("fmt chunk id = %q", data[12:16])
	}
	if got := binary.LittleEndian.Uint32(data[16:20]); got != 16 {
		t.Fatalf("fmt chunk size = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Fatalf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Fatalf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 44100 {
		t.Fatalf("sample rate = %d, want 44100", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 44100*2 {
		t.Fatalf("byte rate = %d, want %d", got, 44100*2)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 2 {
		t.Fatalf("block align = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Fatalf("bits per sample = %d, want 16", got)
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	samples := []int16{0, 32767, -32767, 1234, -1234}
	data := writeTemp(t, samples, 44100)

	wantSize := 44 + 2*len(samples)
	if len(data) != wantSize {
		t.Fatalf("file size = %d, want %d", len(data), wantSize)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(36+2*len(samples)) {
		t.Fatalf("RIFF size = %d, want %d", got, 36+2*len(samples))
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(2*len(samples)) {
		t.Fatalf("data chunk size = %d, want %d", got, 2*len(samples))
	}

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(data[44+2*i : 46+2*i]))
		if got != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.wav")
	if err := WriteFile(path, []int16{1, 2, 3}, 44100); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
}

func TestEncodeRejectsBadSampleRate(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.wav")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	if err := Encode(f, nil, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
