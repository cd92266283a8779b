package chords

import (
	"fmt"
	"sort"
)

// Inversion thresholds by root pitch class. The best sounding inversion has exactly one note
// above a threshold between middle C and the E flat above it.
var inversionThresholds = [12]int{60, 61, 62, 62, 63, 60, 62, 61, 60, 62, 62, 62}

// maxInversionSteps bounds the octave moves made by OptimizeInversion
const maxInversionSteps = 64

func countAbove(pitches []int, threshold int) int {
	n := 0
	for _, p := range pitches {
		if p > threshold {
			n++
		}
	}
	return n
}

// InversionThreshold returns the threshold used for a root
func InversionThreshold(root Note) (int, error) {
	semis, err := root.Interval()
	if err != nil {
		return 0, err
	}
	return inversionThresholds[semis], nil
}

// OptimizeInversion moves pitches by octaves, in place, until exactly one is above the
// root's threshold. With none above, the lowest note goes up an octave; with several, the
// highest comes down. The slice is re-sorted ascending after every move.
func OptimizeInversion(pitches []int, root Note) error {
	if len(pitches) == 0 {
		return nil
	}
	threshold, err := InversionThreshold(root)
	if err != nil {
		return err
	}

	steps := 0
	switch count := countAbove(pitches, threshold); {
	case count == 0:
		for countAbove(pitches, threshold) < 1 {
			if steps++; steps > maxInversionSteps {
				return fmt.Errorf("%w: %v above %d", ErrInversionDiverged, pitches, threshold)
			}
			sort.Ints(pitches)
			pitches[0] += semitonesPerOctave
			sort.Ints(pitches)
		}
	case count > 1:
		for countAbove(pitches, threshold) > 1 {
			if steps++; steps > maxInversionSteps {
				return fmt.Errorf("%w: %v above %d", ErrInversionDiverged, pitches, threshold)
			}
			sort.Ints(pitches)
			pitches[len(pitches)-1] -= semitonesPerOctave
			sort.Ints(pitches)
		}
	}
	return nil
}
