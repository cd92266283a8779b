package chords

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Cmin7(t *testing.T) {
	spec := Parse("Cmin7")
	pitches, state, err := Render(Expand(spec), spec, RootState{})
	require.NoError(t, err)
	assert.Equal(t, []int{48, 51, 55, 58}, pitches)

	root, ok := state.Root()
	assert.True(t, ok)
	assert.Equal(t, Note{Letter: "C"}, root)
}

func TestRender_FollowsMapOrder(t *testing.T) {
	spec := Parse("C13")
	pitches, _, err := Render(Expand(spec), spec, RootState{})
	require.NoError(t, err)
	assert.Equal(t, []int{48, 52, 55, 69, 65, 62, 58}, pitches)
}

func TestRender_RootWrapsAround(t *testing.T) {
	tests := []struct {
		symbol string
		tonic  int
	}{
		{"Cb", 59},
		{"B#", 48},
		{"F#", 54},
		{"Gb", 54},
		{"bb", 58},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			spec := Parse(tt.symbol)
			pitches, _, err := Render(Expand(spec), spec, RootState{})
			require.NoError(t, err)
			assert.Equal(t, tt.tonic, pitches[0])
		})
	}
}

func TestRender_UsesCarriedRoot(t *testing.T) {
	prev := NewRootState(Note{Letter: "F"})

	spec := Parse("7")
	pitches, state, err := Render(Expand(spec), spec, prev)
	require.NoError(t, err)

	// a bare 7 in middle position adds a natural seventh: F A C E
	assert.Equal(t, []int{53, 57, 60, 64}, pitches)
	assert.Equal(t, Note{Letter: "F"}, spec.Root)

	root, ok := state.Root()
	assert.True(t, ok)
	assert.Equal(t, Note{Letter: "F"}, root)
}

func TestRender_NoRootNoPrevious(t *testing.T) {
	prev := NewRootState(Note{})
	spec := Parse("/E")

	pitches, state, err := Render(Expand(spec), spec, prev)
	assert.True(t, errors.Is(err, ErrNoRoot))
	assert.Nil(t, pitches)
	assert.Equal(t, prev, state)
}

func TestDegreeSemitones(t *testing.T) {
	expected := map[int]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11, 8: 12, 9: 14, 10: 16, 11: 17, 12: 19, 13: 21, 15: 24}
	for degree, semis := range expected {
		got, err := degreeSemitones(degree)
		require.NoError(t, err)
		assert.Equal(t, semis, got, "degree %d", degree)
	}

	_, err := degreeSemitones(0)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}
