package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		mode     Mode
		expected []int
	}{
		{"raw minor seventh", "Cmin7", ModeRaw, []int{48, 51, 55, 58}},
		{"condensed minor seventh", "Cmin7", ModeCondensed, []int{48, 55, 58, 60, 63}},
		{"condensed dominant seventh", "C7", ModeCondensed, []int{48, 55, 58, 60, 64}},
		{"condensed flat nine over B", "G7b9/B", ModeCondensed, []int{47, 53, 56, 59, 62}},
		{"raw thirteenth keeps map order", "C13", ModeRaw, []int{48, 52, 55, 69, 65, 62, 58}},
		{"raw major triad over low root", "F", ModeRaw, []int{41, 53, 57, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, _, err := Compile(tt.symbol, Options{Mode: tt.mode}, RootState{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chord.Pitches)
			assert.Equal(t, tt.symbol, chord.Symbol)
		})
	}
}

func TestCompile_CarriesRootBetweenCalls(t *testing.T) {
	opts := Options{Mode: ModeRaw}

	first, state, err := Compile("F", opts, RootState{})
	require.NoError(t, err)
	assert.Equal(t, []int{41, 53, 57, 60}, first.Pitches)

	second, state, err := Compile("/A", opts, state)
	require.NoError(t, err)
	assert.Equal(t, []int{45, 53, 57, 60}, second.Pitches)

	root, ok := state.Root()
	require.True(t, ok)
	assert.Equal(t, Note{Letter: "F"}, root)
}

func TestCompile_NoRoot(t *testing.T) {
	_, state, err := Compile("/E", Options{}, RootState{})
	assert.ErrorIs(t, err, ErrNoRoot)

	_, ok := state.Root()
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("RAW")
	require.NoError(t, err)
	assert.Equal(t, ModeRaw, mode)

	mode, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeCondensed, mode)

	_, err = ParseMode("spread")
	assert.Error(t, err)
}

func TestCompile_FailureAfterRenderStillCarriesRoot(t *testing.T) {
	_, state, err := Compile("Cadd400add393", Options{}, RootState{})
	assert.ErrorIs(t, err, ErrInversionDiverged)

	root, ok := state.Root()
	require.True(t, ok)
	assert.Equal(t, Note{Letter: "C"}, root)
}
