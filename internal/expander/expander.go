package expander

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

// Options configures one expansion run
type Options struct {
	Chords chords.Options
	// Pattern is the optional rhythm cycle; without one each chord sounds once for its whole span
	Pattern rhythm.Pattern
	// UseEntirePattern repeats the cycle across the whole score instead of restarting it per chord
	UseEntirePattern bool
	// DefaultRoot is used for a leading chord that names no root
	DefaultRoot *chords.Note
}

// ChordResult is the outcome for one chord event. Err is set when the chord could not be
// compiled; the rest of the run is unaffected.
type ChordResult struct {
	Event  ChordEvent     `json:"event"`
	Chord  *chords.Chord  `json:"chord,omitempty"`
	Rhythm []rhythm.Event `json:"rhythm,omitempty"`
	Err    error          `json:"-"`
}

// MarshalJSON includes the error message
func (r ChordResult) MarshalJSON() ([]byte, error) {
	type plain ChordResult
	out := struct {
		plain
		Error string `json:"error,omitempty"`
	}{plain: plain(r)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// NoteEvent is a single sounding pitch
type NoteEvent struct {
	Tick     int `json:"tick"`
	Duration int `json:"duration"`
	Pitch    int `json:"pitch"`
}

// Result is the outcome of a run
type Result struct {
	Chords   []ChordResult `json:"chords"`
	Notes    []NoteEvent   `json:"notes"`
	EndTick  int           `json:"end_tick"`
	Expanded int           `json:"expanded"`
	Failed   int           `json:"failed"`
	Warnings int           `json:"warnings"`
}

// Run compiles every chord event in score order and lays out its rhythm. The root of the
// last successfully rendered chord is carried to the next one. A chord that fails is
// recorded on its result and skipped.
func Run(events []ChordEvent, opts Options) (*Result, error) {
	if len(opts.Pattern) > 0 {
		if err := opts.Pattern.Validate(); err != nil {
			return nil, fmt.Errorf("rhythm pattern: %w", err)
		}
	}

	state := chords.RootState{}
	if opts.DefaultRoot != nil {
		state = chords.NewRootState(*opts.DefaultRoot)
	}

	result := &Result{
		Chords: make([]ChordResult, 0, len(events)),
		Notes:  []NoteEvent{},
	}

	for _, ev := range events {
		if end := ev.Tick + ev.Duration; end > result.EndTick {
			result.EndTick = end
		}

		cr := ChordResult{Event: ev}
		chord, next, err := chords.Compile(ev.Symbol, opts.Chords, state)
		state = next
		if err != nil {
			logger.Warn("Chord failed to expand", logger.Fields{
				"symbol": ev.Symbol,
				"tick":   ev.Tick,
				"error":  err.Error(),
			})
			cr.Err = err
			result.Failed++
			result.Chords = append(result.Chords, cr)
			continue
		}
		cr.Chord = chord
		result.Warnings += len(chord.Spec.Unparsed)

		cr.Rhythm, err = layout(opts, ev)
		if err != nil {
			return nil, err
		}

		for _, rev := range cr.Rhythm {
			if rev.Duration <= 0 {
				continue
			}
			for _, pitch := range rhythm.Apply(rev.Voicing, chord.Pitches) {
				result.Notes = append(result.Notes, NoteEvent{Tick: rev.Tick, Duration: rev.Duration, Pitch: pitch})
			}
		}

		result.Expanded++
		result.Chords = append(result.Chords, cr)
	}

	sort.SliceStable(result.Notes, func(i, j int) bool { return result.Notes[i].Tick < result.Notes[j].Tick })

	logger.Debug("Expansion run finished", logger.Fields{
		"chords":   len(events),
		"expanded": result.Expanded,
		"failed":   result.Failed,
		"warnings": result.Warnings,
	})

	return result, nil
}

func layout(opts Options, ev ChordEvent) ([]rhythm.Event, error) {
	switch {
	case len(opts.Pattern) == 0:
		return rhythm.Sustain(ev.Tick, ev.Duration), nil
	case opts.UseEntirePattern:
		return rhythm.Slice(opts.Pattern, ev.Tick, ev.Duration)
	default:
		return rhythm.Fit(opts.Pattern, ev.Tick, ev.Duration)
	}
}
