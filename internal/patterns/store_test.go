package patterns

import (
	"context"
	"testing"

	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		cycle int
		items int
	}{
		{"whole", 1920, 1},
		{"half", 1920, 2},
		{"quarters", 1920, 4},
		{"eighths", 1920, 8},
		{"waltz", 1440, 3},
		{"bossa", 3840, 6},
		{"tresillo", 1920, 3},
		{"stride", 1920, 4},
		{"offbeat", 1920, 8},
		{"anticipation", 1920, 5},
	}

	require.Len(t, BuiltinNames(), len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Builtin(tt.name, DefaultTicksPerQuarter)
			require.True(t, ok)
			require.NoError(t, p.Pattern.Validate())
			assert.Equal(t, tt.cycle, p.Pattern.CycleLength())
			assert.Len(t, p.Pattern, tt.items)
			assert.True(t, p.Builtin)
		})
	}
}

func TestBuiltinScalesWithResolution(t *testing.T) {
	p, ok := Builtin("tresillo", 960)
	require.True(t, ok)
	assert.Equal(t, rhythm.Pattern{
		{Offset: 0, Duration: 1440, Voicing: rhythm.VoicingDefault},
		{Offset: 1440, Duration: 1440, Voicing: rhythm.VoicingDefault},
		{Offset: 2880, Duration: 960, Voicing: rhythm.VoicingDefault},
	}, p.Pattern)

	_, ok = Builtin("polka", 480)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTicksPerQuarter)

	custom := NamedPattern{
		Name:        "push",
		Description: "anticipated downbeat",
		Pattern: rhythm.Pattern{
			{Offset: 0, Duration: 720, Voicing: rhythm.VoicingRest},
			{Offset: 720, Duration: 240, Voicing: rhythm.VoicingDefault},
		},
		Builtin: true,
	}
	require.NoError(t, store.Put(ctx, custom))

	got, err := store.Get(ctx, "push")
	require.NoError(t, err)
	assert.Equal(t, custom.Pattern, got.Pattern)
	assert.False(t, got.Builtin)

	got.Pattern[0].Duration = 1
	again, err := store.Get(ctx, "push")
	require.NoError(t, err)
	assert.Equal(t, 720, again.Pattern[0].Duration)

	builtin, err := store.Get(ctx, "waltz")
	require.NoError(t, err)
	assert.True(t, builtin.Builtin)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(BuiltinNames())+1)
	assert.Equal(t, "push", all[len(all)-1].Name)
}

func TestMemoryStore_PutRejects(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTicksPerQuarter)
	valid := rhythm.Pattern{{Offset: 0, Duration: 480, Voicing: rhythm.VoicingDefault}}

	tests := []struct {
		name    string
		pattern NamedPattern
		target  error
	}{
		{"built-in name", NamedPattern{Name: "bossa", Pattern: valid}, ErrReadOnly},
		{"bad name", NamedPattern{Name: "My Pattern", Pattern: valid}, ErrInvalidName},
		{"empty pattern", NamedPattern{Name: "empty"}, rhythm.ErrEmptyPattern},
		{"gap", NamedPattern{Name: "gap", Pattern: rhythm.Pattern{{Offset: 240, Duration: 240}}}, rhythm.ErrMalformedPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.Put(ctx, tt.pattern), tt.target)
		})
	}
}

func TestRowConversion(t *testing.T) {
	p := NamedPattern{
		Name: "charleston",
		Pattern: rhythm.Pattern{
			{Offset: 0, Duration: 720, Voicing: rhythm.VoicingDefault},
			{Offset: 720, Duration: 1200, Voicing: rhythm.VoicingNonBass},
		},
	}

	row, err := toRow(p)
	require.NoError(t, err)
	assert.Equal(t, "charleston", row.Name)

	back, err := fromRow(*row)
	require.NoError(t, err)
	assert.Equal(t, p, *back)

	_, err = fromRow(RhythmPattern{Name: "broken", Items: "{"})
	assert.Error(t, err)
}
