package models

import (
	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/expander"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

// ParseRequest asks for the structured form of a chord symbol
type ParseRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// ParseResponse is a parsed chord symbol
type ParseResponse struct {
	Symbol string            `json:"symbol"`
	Spec   *chords.ChordSpec `json:"spec"`
}

// CompileRequest compiles one chord symbol to pitches
type CompileRequest struct {
	Symbol       string `json:"symbol" binding:"required"`
	Mode         string `json:"mode"`          // "condensed" (default) or "raw"
	PreviousRoot string `json:"previous_root"` // root to use when the symbol has none, e.g. "F#"
}

// CompileResponse is a compiled chord
type CompileResponse struct {
	Symbol  string            `json:"symbol"`
	Mode    chords.Mode       `json:"mode"`
	Root    string            `json:"root"`
	Pitches []int             `json:"pitches"`
	Degrees *chords.ChordMap  `json:"degrees"`
	Spec    *chords.ChordSpec `json:"spec"`
}

// PatternSource selects a rhythm pattern: inline items, a stored name or a step grid.
// At most one may be set.
type PatternSource struct {
	Pattern     rhythm.Pattern `json:"pattern,omitempty"`
	PatternName string         `json:"pattern_name,omitempty"`
	Grid        string         `json:"grid,omitempty"`
	Step        int            `json:"step,omitempty"` // grid step in ticks, default 240
}

// IsEmpty reports whether no pattern was given
func (s PatternSource) IsEmpty() bool {
	return len(s.Pattern) == 0 && s.PatternName == "" && s.Grid == ""
}

// SliceRequest projects a repeating pattern onto a time window
type SliceRequest struct {
	PatternSource
	StartTick int `json:"start_tick"`
	Duration  int `json:"duration" binding:"required,gt=0"`
}

// SliceResponse is the sliced window
type SliceResponse struct {
	CycleLength int            `json:"cycle_length"`
	Events      []rhythm.Event `json:"events"`
}

// ExpandRequest expands a whole score. Chords come either as annotations or as chart DSL code.
type ExpandRequest struct {
	Chords           []expander.Annotation `json:"chords"`
	Chart            string                `json:"chart"`
	EndTick          int                   `json:"end_tick"`
	Mode             string                `json:"mode"`
	UseEntirePattern bool                  `json:"use_entire_pattern"`
	DefaultRoot      string                `json:"default_root"`
	PatternSource
}

// ExpandResponse is the outcome of an expansion run
type ExpandResponse struct {
	Mode chords.Mode `json:"mode"`
	*expander.Result
}

// PutPatternRequest stores a named rhythm pattern
type PutPatternRequest struct {
	Description string         `json:"description"`
	Pattern     rhythm.Pattern `json:"pattern"`
	Grid        string         `json:"grid"`
	Step        int            `json:"step"`
	// Notes captures the rhythm from recorded notes instead of items or a grid
	Notes []rhythm.RecordedNote `json:"notes"`
}
