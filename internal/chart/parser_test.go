package chart

import (
	"context"
	"testing"

	"github.com/Conceptual-Machines/magda-chords/internal/expander"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Chords(t *testing.T) {
	tests := []struct {
		name     string
		dsl      string
		expected []expander.ChordEvent
	}{
		{
			name: "single chord with default tail",
			dsl:  `chord(symbol="Cmin7", tick=0)`,
			expected: []expander.ChordEvent{
				{Tick: 0, Duration: DefaultTailTicks, Symbol: "Cmin7"},
			},
		},
		{
			name: "progression with end",
			dsl:  `chord(symbol="Dm7", tick=0); chord(symbol="G7b9/B", tick=1920); chord(symbol="Cmaj7", tick=3840); end(tick=7680)`,
			expected: []expander.ChordEvent{
				{Tick: 0, Duration: 1920, Symbol: "Dm7"},
				{Tick: 1920, Duration: 1920, Symbol: "G7b9/B"},
				{Tick: 3840, Duration: 3840, Symbol: "Cmaj7"},
			},
		},
		{
			name: "slash chord without root",
			dsl:  `chord(symbol="F", tick=0); chord(symbol="/A", tick=960); end(tick=1920)`,
			expected: []expander.ChordEvent{
				{Tick: 0, Duration: 960, Symbol: "F"},
				{Tick: 960, Duration: 960, Symbol: "/A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser()
			require.NoError(t, err)

			c, err := p.Parse(context.Background(), tt.dsl)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Events())
			assert.Nil(t, c.Pattern)
		})
	}
}

func TestParser_Rhythm(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	c, err := p.Parse(context.Background(), `rhythm(grid="x-b_", step=120, entire=1); chord(symbol="C", tick=0); end(tick=960)`)
	require.NoError(t, err)

	assert.Equal(t, rhythm.Pattern{
		{Offset: 0, Duration: 120, Voicing: rhythm.VoicingDefault},
		{Offset: 120, Duration: 120, Voicing: rhythm.VoicingRest},
		{Offset: 240, Duration: 240, Voicing: rhythm.VoicingBass},
	}, c.Pattern)
	assert.True(t, c.UseEntirePattern)
	assert.Equal(t, "", c.PatternName)
}

func TestParser_NamedRhythm(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	c, err := p.Parse(context.Background(), `chord(symbol="C", tick=0); rhythm(name="bossa")`)
	require.NoError(t, err)
	assert.Equal(t, "bossa", c.PatternName)
	assert.Nil(t, c.Pattern)
	assert.False(t, c.UseEntirePattern)
}

func TestParser_ReusesEngine(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	first, err := p.Parse(context.Background(), `chord(symbol="C", tick=0)`)
	require.NoError(t, err)
	second, err := p.Parse(context.Background(), `chord(symbol="F", tick=0)`)
	require.NoError(t, err)

	require.Len(t, first.Annotations, 1)
	require.Len(t, second.Annotations, 1)
	assert.Equal(t, "F", second.Annotations[0].Text)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		dsl  string
	}{
		{"empty", "   "},
		{"no chords", `end(tick=960)`},
		{"bad grid", `chord(symbol="C", tick=0); rhythm(grid="_x")`},
		{"grid and name", `chord(symbol="C", tick=0); rhythm(grid="x-", name="waltz")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser()
			require.NoError(t, err)

			_, err = p.Parse(context.Background(), tt.dsl)
			assert.Error(t, err)
		})
	}
}
