package chords

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoRoot is returned when a chord has no root letter and no previous chord root is available
	ErrNoRoot = errors.New("chord has no root and no previous root is available")
	// ErrInvalidDegree is returned for a degree token that is not a positive integer
	ErrInvalidDegree = errors.New("invalid scale degree")
	// ErrInversionDiverged is returned when the inversion search exceeds its iteration cap
	ErrInversionDiverged = errors.New("inversion search did not converge")
)

// Pitch offsets of the natural letters above C
var letterSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// Semitones above the tonic for the simple intervals 1-7
var degreeSemitoneTable = [8]int{0, 0, 2, 4, 5, 7, 9, 11}

const (
	semitonesPerOctave = 12
	degreesPerOctave   = 7

	// tonicOctaveBase places a chord tonic in the octave below middle C (C = 48)
	tonicOctaveBase = 48
)

// Note is a letter with optional accidentals, used for chord roots and bass notes
type Note struct {
	Letter string `json:"letter"`
	Sharp  bool   `json:"sharp,omitempty"`
	Flat   bool   `json:"flat,omitempty"`
}

// IsZero reports whether the note has no letter
func (n Note) IsZero() bool {
	return n.Letter == ""
}

// Interval returns the number of semitones above C (0-11)
func (n Note) Interval() (int, error) {
	semis, ok := letterSemitones[strings.ToUpper(n.Letter)]
	if !ok {
		return 0, fmt.Errorf("invalid note letter %q", n.Letter)
	}
	if n.Flat {
		semis--
	}
	if n.Sharp {
		semis++
	}
	if semis > 11 {
		semis -= semitonesPerOctave
	}
	if semis < 0 {
		semis += semitonesPerOctave
	}
	return semis, nil
}

// LowPitch returns the pitch of the note in the octave below middle C
func (n Note) LowPitch() (int, error) {
	semis, err := n.Interval()
	if err != nil {
		return 0, err
	}
	return semis + tonicOctaveBase, nil
}

// String renders the note as e.g. "F#" or "Bb"
func (n Note) String() string {
	s := strings.ToUpper(n.Letter)
	if n.Sharp {
		s += "#"
	}
	if n.Flat {
		s += "b"
	}
	return s
}

// ParseNote parses a note name such as "C", "F#", "Bb" or "eb"
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("empty note name")
	}
	n := Note{Letter: strings.ToUpper(s[:1])}
	if _, ok := letterSemitones[n.Letter]; !ok {
		return Note{}, fmt.Errorf("invalid note letter %q", s[:1])
	}
	for _, r := range s[1:] {
		switch r {
		case '#', '♯':
			n.Sharp = true
		case 'b', '♭':
			n.Flat = true
		default:
			return Note{}, fmt.Errorf("invalid accidental %q in note %q", r, s)
		}
	}
	return n, nil
}

// degreeSemitones converts a scale degree to semitones above the tonic.
// Compound degrees are the simple interval plus whole octaves (9 = 2 + 12).
func degreeSemitones(degree int) (int, error) {
	if degree < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	octaves := (degree - 1) / degreesPerOctave
	simple := (degree-1)%degreesPerOctave + 1
	return degreeSemitoneTable[simple] + octaves*semitonesPerOctave, nil
}
