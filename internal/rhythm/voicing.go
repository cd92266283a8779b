package rhythm

// Apply selects the pitches that sound for a voicing. The first pitch is the bass.
func Apply(v Voicing, pitches []int) []int {
	if len(pitches) == 0 {
		return []int{}
	}
	switch v {
	case VoicingRest:
		return []int{}
	case VoicingBass:
		return []int{pitches[0]}
	case VoicingNonBass:
		out := make([]int, len(pitches)-1)
		copy(out, pitches[1:])
		return out
	default:
		out := make([]int, len(pitches))
		copy(out, pitches)
		return out
	}
}
