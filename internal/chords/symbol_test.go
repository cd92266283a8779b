package chords

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Cmin7(t *testing.T) {
	spec := Parse("Cmin7")

	assert.Equal(t, Note{Letter: "C"}, spec.Root)
	assert.Equal(t, QualityMinor, spec.Quality)
	assert.Equal(t, "7", spec.Number)
	assert.Empty(t, spec.Sus)
	assert.Empty(t, spec.Add)
	assert.Empty(t, spec.Drop)
	assert.Empty(t, spec.Alter)
	assert.Nil(t, spec.Bass)
	assert.Empty(t, spec.Unparsed)
}

func TestParse_FrontGrammar(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		root    Note
		quality Quality
		number  string
	}{
		{"sharp major seventh", "C#maj7", Note{Letter: "C", Sharp: true}, QualityMajor, "7"},
		{"flat root", "Bb13", Note{Letter: "B", Flat: true}, QualityUnspecified, "13"},
		{"lowercase root", "c7", Note{Letter: "c"}, QualityUnspecified, "7"},
		{"dash minor", "D-7", Note{Letter: "D"}, QualityMinor, "7"},
		{"unicode minus minor", "D−9", Note{Letter: "D"}, QualityMinor, "9"},
		{"diminished", "Co7", Note{Letter: "C"}, QualityDiminished, "7"},
		{"degree sign diminished", "F#°", Note{Letter: "F", Sharp: true}, QualityDiminished, ""},
		{"half diminished", "Eø7", Note{Letter: "E"}, QualityHalfDiminished, "7"},
		{"zero half diminished", "E07", Note{Letter: "E"}, QualityHalfDiminished, "7"},
		{"augmented plus", "C+", Note{Letter: "C"}, QualityAugmented, ""},
		{"augmented word", "Gaug7", Note{Letter: "G"}, QualityAugmented, "7"},
		{"triangle", "CΔ7", Note{Letter: "C"}, QualityTriangle, "7"},
		{"caret triangle", "Ab^", Note{Letter: "A", Flat: true}, QualityTriangle, ""},
		{"plain triad", "E", Note{Letter: "E"}, QualityUnspecified, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Parse(tt.symbol)
			assert.Equal(t, tt.root, spec.Root)
			assert.Equal(t, tt.quality, spec.Quality)
			assert.Equal(t, tt.number, spec.Number)
			assert.Empty(t, spec.Unparsed)
		})
	}
}

func TestParse_NumberDependsOnPosition(t *testing.T) {
	// "9" right after the root is the primary extension...
	front := Parse("C9")
	assert.Equal(t, "9", front.Number)
	assert.Empty(t, front.Add)

	// ...but in middle position it is an added degree
	middle := Parse("Cm(9)")
	assert.Equal(t, "", middle.Number)
	assert.Equal(t, []int{9}, middle.Add)

	susDigit := Parse("Csus9")
	assert.Equal(t, []int{9}, susDigit.Sus)
	assert.Empty(t, susDigit.Add)

	sixNine := Parse("C69")
	assert.True(t, sixNine.SixNine)
	assert.Equal(t, "", sixNine.Number)
}

func TestParse_MiddleGrammar(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		check  func(t *testing.T, spec *ChordSpec)
	}{
		{"flat nine with bass", "G7b9/B", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, "7", spec.Number)
			assert.Equal(t, []Alteration{{Degree: 9, Flat: true}}, spec.Alter)
			require.NotNil(t, spec.Bass)
			assert.Equal(t, Note{Letter: "B"}, *spec.Bass)
		}},
		{"sharp eleven", "Bb13#11", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []Alteration{{Degree: 11, Sharp: true}}, spec.Alter)
		}},
		{"unicode accidentals", "C7♭9♯11", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []Alteration{{Degree: 9, Flat: true}, {Degree: 11, Sharp: true}}, spec.Alter)
		}},
		{"default sus", "Csus", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []int{4}, spec.Sus)
		}},
		{"sus2", "Dsus2", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []int{2}, spec.Sus)
		}},
		{"add", "Cadd9", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []int{9}, spec.Add)
		}},
		{"drop and no", "C7drop5no3", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []int{5, 3}, spec.Drop)
		}},
		{"alt", "C7alt", func(t *testing.T, spec *ChordSpec) {
			assert.True(t, spec.Alt)
		}},
		{"minor major seventh", "CmM7", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, QualityMinor, spec.Quality)
			assert.Equal(t, "7", spec.MajorAlt)
		}},
		{"space stops the middle grammar", "Cadd2 6/9", func(t *testing.T, spec *ChordSpec) {
			assert.Equal(t, []int{2}, spec.Add)
			assert.Equal(t, []string{" 6/9"}, spec.Unparsed)
		}},
		{"flat bass", "Cm7/Bb", func(t *testing.T, spec *ChordSpec) {
			require.NotNil(t, spec.Bass)
			assert.Equal(t, Note{Letter: "B", Flat: true}, *spec.Bass)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Parse(tt.symbol))
		})
	}
}

func TestParse_Parentheses(t *testing.T) {
	enclosed := Parse("(Cm7)")
	assert.Equal(t, Note{Letter: "C"}, enclosed.Root)
	assert.Equal(t, QualityMinor, enclosed.Quality)
	assert.Equal(t, "7", enclosed.Number)
	assert.Empty(t, enclosed.Unparsed)

	extras := Parse("C9(#11)(13)")
	assert.Equal(t, "9", extras.Number)
	assert.Equal(t, []Alteration{{Degree: 11, Sharp: true}}, extras.Alter)
	assert.Equal(t, []int{13}, extras.Add)
	assert.Empty(t, extras.Unparsed)

	withBass := Parse("C7(b9)/E")
	assert.Equal(t, []Alteration{{Degree: 9, Flat: true}}, withBass.Alter)
	require.NotNil(t, withBass.Bass)
	assert.Equal(t, "E", withBass.Bass.Letter)
}

func TestParse_NoRoot(t *testing.T) {
	spec := Parse("/E")
	assert.False(t, spec.HasRoot())
	require.NotNil(t, spec.Bass)
	assert.Equal(t, Note{Letter: "E"}, *spec.Bass)

	bare := Parse("7")
	assert.False(t, bare.HasRoot())
	assert.Equal(t, []int{7}, bare.Add)
}

func TestParse_ResidueIsNotFatal(t *testing.T) {
	spec := Parse("Cm7xyz")
	assert.Equal(t, QualityMinor, spec.Quality)
	assert.Equal(t, "7", spec.Number)
	assert.Equal(t, []string{"xyz"}, spec.Unparsed)

	extra := Parse("C7(zz)")
	assert.Equal(t, "7", extra.Number)
	assert.Equal(t, []string{"zz"}, extra.Unparsed)
}

func TestParse_RejectsZeroDegree(t *testing.T) {
	spec := Parse("Cadd0")
	assert.Empty(t, spec.Add)
	assert.Equal(t, []string{"0"}, spec.Unparsed)
}

func TestParse_MiddleSixNineAndMajorNumber(t *testing.T) {
	tests := []struct {
		symbol   string
		sixNine  bool
		majorAlt string
		expected []DegreeAlteration
	}{
		{"C(69)", true, "", entries(1, 0, 3, 0, 5, 0, 6, 0, 9, 0)},
		{"C(6-9)", true, "", entries(1, 0, 3, 0, 5, 0, 6, 0, 9, 0)},
		{"C(6+9)", true, "", entries(1, 0, 3, 0, 5, 0, 6, 0, 9, 0)},
		{"C(6/9)", true, "", entries(1, 0, 3, 0, 5, 0, 6, 0, 9, 0)},
		{"Cm(maj9)", false, "9", entries(1, 0, 3, -1, 5, 0, 9, 0, 7, 0)},
		{"Cm(Ma7)", false, "7", entries(1, 0, 3, -1, 5, 0, 7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			spec := Parse(tt.symbol)
			assert.Equal(t, tt.sixNine, spec.SixNine)
			assert.Equal(t, tt.majorAlt, spec.MajorAlt)
			assert.Empty(t, spec.Unparsed)
			assert.Equal(t, tt.expected, Expand(spec).Entries())
		})
	}
}

func TestParse_WarnsOncePerSymbol(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	spec := Parse("Cadd0(zz)xy")
	assert.Equal(t, []string{"0", "xy", "zz"}, spec.Unparsed)
	assert.Equal(t, 1, strings.Count(buf.String(), "[WARN]"), buf.String())
	assert.Contains(t, buf.String(), "unparsed=0,xy,zz")

	buf.Reset()
	Parse("Cmaj7")
	assert.NotContains(t, buf.String(), "[WARN]")
}
