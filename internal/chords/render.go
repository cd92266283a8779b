package chords

import "fmt"

// RootState carries the root of the most recently rendered chord into the next Render call,
// so a symbol without a root (e.g. "/B" or "7") reuses it. It lives for one expansion run.
type RootState struct {
	root Note
	ok   bool
}

// NewRootState seeds the carried root, e.g. with a default for the first chord of a run
func NewRootState(root Note) RootState {
	return RootState{root: root, ok: !root.IsZero()}
}

// Root returns the carried root, if any
func (s RootState) Root() (Note, bool) {
	return s.root, s.ok
}

// ResolveRoot fills in a missing root from the carried state
func ResolveRoot(spec *ChordSpec, prev RootState) error {
	if spec.HasRoot() {
		return nil
	}
	root, ok := prev.Root()
	if !ok {
		return ErrNoRoot
	}
	spec.Root = root
	return nil
}

// Render converts a ChordMap into absolute pitches above the chord's tonic, which sits in the
// octave below middle C. Output order follows the map's order and is not sorted. The returned
// state carries this chord's root for the next call; on error prev is returned unchanged.
func Render(m *ChordMap, spec *ChordSpec, prev RootState) ([]int, RootState, error) {
	if err := ResolveRoot(spec, prev); err != nil {
		return nil, prev, err
	}

	tonic, err := spec.Root.LowPitch()
	if err != nil {
		return nil, prev, fmt.Errorf("failed to render chord root: %w", err)
	}

	pitches := make([]int, 0, m.Len())
	for _, entry := range m.Entries() {
		semis, err := degreeSemitones(entry.Degree)
		if err != nil {
			return nil, prev, err
		}
		pitches = append(pitches, tonic+semis+entry.Alteration)
	}

	return pitches, NewRootState(spec.Root), nil
}
