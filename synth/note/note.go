// Package note models chromatic pitch and resolves it to equal-temperament
// frequencies referenced to A4 = 440 Hz.
package note

import (
	"errors"
	"fmt"
	"math"
)

// ID identifies one of the 12 chromatic pitch classes within an octave.
type ID int

// Chromatic pitch classes, C through B.
const (
	C ID = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// ReferenceFrequency is the A4 tuning reference in Hz.
const ReferenceFrequency = 440.0

// ErrInvalidID reports a pitch class outside [0, 11].
var ErrInvalidID = errors.New("note: id must be in [0, 11]")

const semitonesPerOctave = 12

// Valid reports whether id is one of the 12 chromatic pitch classes.
func (id ID) Valid() bool {
	return id >= C && id <= B
}

// String returns the conventional name of the pitch class, using sharps.
func (id ID) String() string {
	names := [semitonesPerOctave]string{
		"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
	}
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return names[id]
}

// Frequency resolves a pitch class and octave to its equal-temperament
// frequency in Hz. Any octave is accepted, including negative ones; each
// octave step doubles or halves the frequency.
func Frequency(id ID, octave int) (float64, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, int(id))
	}

	semitones := float64(id-A) + semitonesPerOctave*float64(octave-4)
	return ReferenceFrequency * math.Exp2(semitones/semitonesPerOctave), nil
}
