package rhythm

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned when a pattern has no items
	ErrEmptyPattern = errors.New("rhythm pattern is empty")
	// ErrMalformedPattern is returned for non-contiguous offsets or non-positive durations
	ErrMalformedPattern = errors.New("rhythm pattern is malformed")
)

// Voicing says which of a chord's pitches sound during a rhythm item
type Voicing string

const (
	VoicingDefault Voicing = "default"
	VoicingBass    Voicing = "bass"
	VoicingNonBass Voicing = "nonbass"
	VoicingRest    Voicing = "rest"
)

// ParseVoicing accepts the four voicing names; empty means default
func ParseVoicing(s string) (Voicing, error) {
	switch Voicing(s) {
	case "", VoicingDefault:
		return VoicingDefault, nil
	case VoicingBass, VoicingNonBass, VoicingRest:
		return Voicing(s), nil
	}
	return "", fmt.Errorf("unknown voicing %q", s)
}

// UnmarshalJSON validates the voicing name
func (v *Voicing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVoicing(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Item is one step of a rhythm cycle
type Item struct {
	Offset   int     `json:"offset"`
	Duration int     `json:"duration"`
	Voicing  Voicing `json:"voicing"`
}

// Pattern is one cycle of a repeating rhythm
type Pattern []Item

// CycleLength is the sum of item durations
func (p Pattern) CycleLength() int {
	total := 0
	for _, item := range p {
		total += item.Duration
	}
	return total
}

// Validate checks that the pattern is non-empty, that every duration is positive and
// that each item starts where the previous one ends, beginning at 0.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	next := 0
	for i, item := range p {
		if item.Duration <= 0 {
			return fmt.Errorf("%w: item %d has duration %d", ErrMalformedPattern, i, item.Duration)
		}
		if item.Offset != next {
			return fmt.Errorf("%w: item %d starts at %d, expected %d", ErrMalformedPattern, i, item.Offset, next)
		}
		next += item.Duration
	}
	return nil
}

// Event is a concrete timed rhythm fragment
type Event struct {
	Tick     int     `json:"tick"`
	Voicing  Voicing `json:"voicing"`
	Duration int     `json:"duration"`
}
