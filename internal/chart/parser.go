package chart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/grammar-school-go/gs"
	"github.com/Conceptual-Machines/magda-chords/internal/expander"
	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

// DefaultTailTicks is how long the last chord lasts when a chart has no end(): one 4/4 bar at 480 ticks per quarter
const DefaultTailTicks = 1920

// Chart is a parsed chord chart
type Chart struct {
	Annotations []expander.Annotation
	EndTick     int
	// Pattern is set by rhythm(grid=...); PatternName by rhythm(name=...)
	Pattern          rhythm.Pattern
	PatternName      string
	UseEntirePattern bool
}

// Events collects the chart's chord events
func (c *Chart) Events() []expander.ChordEvent {
	return expander.Collect(c.Annotations, c.EndTick)
}

// Parser parses chart DSL code using Grammar School
type Parser struct {
	engine *gs.Engine
	dsl    *DSL
	chart  *Chart
	hasEnd bool
}

// DSL implements the DSL side-effect methods
type DSL struct {
	parser *Parser
}

// NewParser creates a new chart parser
func NewParser() (*Parser, error) {
	parser := &Parser{dsl: &DSL{}}
	parser.dsl.parser = parser

	engine, err := gs.NewEngine(Grammar(), parser.dsl, gs.NewLarkParser())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	parser.engine = engine
	return parser, nil
}

// Parse executes chart code and returns the chart it describes
func (p *Parser) Parse(ctx context.Context, code string) (*Chart, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("empty chart")
	}

	p.chart = &Chart{}
	p.hasEnd = false

	if err := p.engine.Execute(ctx, strings.TrimSpace(code)); err != nil {
		return nil, fmt.Errorf("failed to execute chart: %w", err)
	}

	c := p.chart
	if len(c.Annotations) == 0 {
		return nil, errors.New("chart has no chords")
	}

	if !p.hasEnd {
		last := 0
		for _, a := range c.Annotations {
			if a.Tick > last {
				last = a.Tick
			}
		}
		c.EndTick = last + DefaultTailTicks
	}

	logger.Debug("Parsed chord chart", logger.Fields{
		"chords":   len(c.Annotations),
		"end_tick": c.EndTick,
		"pattern":  len(c.Pattern),
	})
	return c, nil
}

// Chord handles chord() calls
func (d *DSL) Chord(args gs.Args) error {
	symbol := ""
	if v, ok := args["symbol"]; ok && v.Kind == gs.ValueString {
		symbol = strings.Trim(v.Str, "\"")
	}
	if strings.TrimSpace(symbol) == "" {
		return errors.New("chord: missing symbol")
	}

	tick := 0
	if v, ok := args["tick"]; ok && v.Kind == gs.ValueNumber {
		tick = int(v.Num)
	}
	if tick < 0 {
		return fmt.Errorf("chord: negative tick %d", tick)
	}

	d.parser.chart.Annotations = append(d.parser.chart.Annotations, expander.Annotation{Tick: tick, Text: symbol})
	return nil
}

// Rhythm handles rhythm() calls; a later call replaces an earlier one
func (d *DSL) Rhythm(args gs.Args) error {
	c := d.parser.chart

	grid := ""
	if v, ok := args["grid"]; ok && v.Kind == gs.ValueString {
		grid = strings.Trim(v.Str, "\"")
	}
	name := ""
	if v, ok := args["name"]; ok && v.Kind == gs.ValueString {
		name = strings.Trim(v.Str, "\"")
	}

	switch {
	case grid != "" && name != "":
		return errors.New("rhythm: grid and name are mutually exclusive")
	case grid == "" && name == "":
		return errors.New("rhythm: missing grid or name")
	}

	step := rhythm.DefaultStep
	if v, ok := args["step"]; ok && v.Kind == gs.ValueNumber {
		step = int(v.Num)
	}

	c.Pattern, c.PatternName = nil, name
	if grid != "" {
		pattern, err := rhythm.ParseGrid(grid, step)
		if err != nil {
			return fmt.Errorf("rhythm: %w", err)
		}
		c.Pattern = pattern
	}

	if v, ok := args["entire"]; ok && v.Kind == gs.ValueNumber {
		c.UseEntirePattern = v.Num != 0
	}
	return nil
}

// End handles end() calls
func (d *DSL) End(args gs.Args) error {
	v, ok := args["tick"]
	if !ok || v.Kind != gs.ValueNumber {
		return errors.New("end: missing tick")
	}
	d.parser.chart.EndTick = int(v.Num)
	d.parser.hasEnd = true
	return nil
}
