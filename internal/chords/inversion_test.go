package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeInversion(t *testing.T) {
	tests := []struct {
		name     string
		pitches  []int
		root     Note
		expected []int
	}{
		{"none above moves lowest up", []int{48, 51, 55, 58}, Note{Letter: "C"}, []int{55, 58, 60, 63}},
		{"several above moves highest down", []int{60, 64, 67, 70}, Note{Letter: "C"}, []int{55, 58, 60, 64}},
		{"exactly one above is left alone", []int{52, 62, 58}, Note{Letter: "C"}, []int{52, 62, 58}},
		{"threshold depends on root", []int{59, 62, 65, 68}, Note{Letter: "G"}, []int{53, 56, 59, 62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OptimizeInversion(tt.pitches, tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tt.pitches)
		})
	}
}

func TestOptimizeInversion_LeavesOneAboveThreshold(t *testing.T) {
	symbols := []string{
		"Cmin7", "C7", "Cmaj7", "C13", "G7b9", "F#m7b5", "Bb13#11", "Ebdim7",
		"Aaug", "Dsus", "E5", "Ab69", "Db7alt", "B9", "Gm11", "F#7#9",
	}

	for _, symbol := range symbols {
		t.Run(symbol, func(t *testing.T) {
			spec := Parse(symbol)
			m := Expand(spec)
			Prune(m, DefaultMaxNotes)
			pitches, _, err := Render(m, spec, RootState{})
			require.NoError(t, err)

			require.NoError(t, OptimizeInversion(pitches, spec.Root))

			threshold, err := InversionThreshold(spec.Root)
			require.NoError(t, err)
			assert.Equal(t, 1, countAbove(pitches, threshold), "pitches %v", pitches)
		})
	}
}

func TestOptimizeInversion_IterationCap(t *testing.T) {
	pitches := []int{-1000, -1000}
	err := OptimizeInversion(pitches, Note{Letter: "C"})
	assert.ErrorIs(t, err, ErrInversionDiverged)
}

func TestOptimizeInversion_Empty(t *testing.T) {
	assert.NoError(t, OptimizeInversion(nil, Note{Letter: "C"}))
}
