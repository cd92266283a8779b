package chords

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode selects how many notes a compiled chord has
type Mode int

const (
	// ModeCondensed keeps at most MaxNotes upper notes, inverted near middle C, plus a bass
	ModeCondensed Mode = iota
	// ModeRaw keeps every degree of the chord
	ModeRaw
)

// DefaultMaxNotes is the condensed-mode upper note limit
const DefaultMaxNotes = 4

func (m Mode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "condensed"
}

// MarshalJSON encodes the mode by name
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// ParseMode accepts "raw" or "condensed"; empty means condensed
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "condensed":
		return ModeCondensed, nil
	case "raw":
		return ModeRaw, nil
	default:
		return ModeCondensed, fmt.Errorf("unknown voicing mode %q", s)
	}
}

// Options configures Compile
type Options struct {
	Mode     Mode
	MaxNotes int
}

func (o Options) maxNotes() int {
	if o.MaxNotes > 0 {
		return o.MaxNotes
	}
	return DefaultMaxNotes
}

// Chord is a compiled chord symbol
type Chord struct {
	Symbol  string     `json:"symbol"`
	Spec    *ChordSpec `json:"spec"`
	Degrees *ChordMap  `json:"degrees"`
	Pitches []int      `json:"pitches"`
}

// Compile runs a chord symbol through the whole pipeline: parse, expand, prune (condensed),
// render, invert (condensed) and add the bass. prev supplies the root for symbols without
// one; the returned state carries this chord's root.
func Compile(text string, opts Options, prev RootState) (*Chord, RootState, error) {
	spec := Parse(text)
	m := Expand(spec)
	if opts.Mode == ModeCondensed {
		Prune(m, opts.maxNotes())
	}

	pitches, next, err := Render(m, spec, prev)
	if err != nil {
		return nil, prev, fmt.Errorf("chord %q: %w", text, err)
	}

	if opts.Mode == ModeCondensed {
		if err := OptimizeInversion(pitches, spec.Root); err != nil {
			return nil, next, fmt.Errorf("chord %q: %w", text, err)
		}
	}

	pitches, err = AddBass(spec, pitches)
	if err != nil {
		return nil, next, fmt.Errorf("chord %q: %w", text, err)
	}

	return &Chord{
		Symbol:  text,
		Spec:    spec,
		Degrees: m,
		Pitches: pitches,
	}, next, nil
}
