package chords

// Bass notes at or above this pitch (E below middle C) drop an octave
const bassCeiling = 52

// BassPitch returns the bass pitch for a chord: the slash bass if present, else the root
func BassPitch(spec *ChordSpec) (int, error) {
	note := spec.Root
	if spec.Bass != nil {
		note = *spec.Bass
	}
	pitch, err := note.LowPitch()
	if err != nil {
		return 0, err
	}
	if pitch >= bassCeiling {
		pitch -= semitonesPerOctave
	}
	return pitch, nil
}

// AddBass prepends the bass pitch unless it is already the first pitch. The result is not
// re-sorted.
func AddBass(spec *ChordSpec, pitches []int) ([]int, error) {
	bass, err := BassPitch(spec)
	if err != nil {
		return pitches, err
	}
	if len(pitches) > 0 && pitches[0] == bass {
		return pitches, nil
	}
	return append([]int{bass}, pitches...), nil
}
