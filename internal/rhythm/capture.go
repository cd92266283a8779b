package rhythm

// RecordedNote is a note or rest taken from an existing score selection
type RecordedNote struct {
	Tick       int  `json:"tick"`
	Duration   int  `json:"duration"`
	Rest       bool `json:"rest,omitempty"`
	TieForward bool `json:"tie_forward,omitempty"`
	TieBack    bool `json:"tie_back,omitempty"`
}

// FromNotes builds a pattern from recorded notes in score order. A tied run of notes
// becomes one item whose duration is the sum of the run, rests become rest items and
// offsets are made relative to the first note.
func FromNotes(notes []RecordedNote) (Pattern, error) {
	if len(notes) == 0 {
		return nil, ErrEmptyPattern
	}

	start := notes[0].Tick
	var p Pattern
	tied := -1
	for _, n := range notes {
		if n.Rest {
			p = append(p, Item{Offset: n.Tick - start, Duration: n.Duration, Voicing: VoicingRest})
			tied = -1
			continue
		}

		if n.TieBack && tied >= 0 {
			p[tied].Duration += n.Duration
		} else {
			p = append(p, Item{Offset: n.Tick - start, Duration: n.Duration, Voicing: VoicingDefault})
			if n.TieForward {
				tied = len(p) - 1
			}
		}
		if !n.TieForward {
			tied = -1
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
