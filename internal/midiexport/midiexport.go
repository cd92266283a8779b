package midiexport

import (
	"fmt"
	"io"
	"sort"

	"github.com/Conceptual-Machines/magda-chords/internal/expander"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	DefaultTicksPerQuarter = 480
	DefaultTempo           = 120.0
	DefaultVelocity        = 80
)

// Options configures the written file
type Options struct {
	TicksPerQuarter int
	Tempo           float64
	Channel         uint8
	Velocity        uint8
}

func (o Options) withDefaults() Options {
	if o.TicksPerQuarter <= 0 {
		o.TicksPerQuarter = DefaultTicksPerQuarter
	}
	if o.Tempo <= 0 {
		o.Tempo = DefaultTempo
	}
	if o.Velocity == 0 {
		o.Velocity = DefaultVelocity
	}
	if o.Channel > 15 {
		o.Channel = 15
	}
	return o
}

type noteEdge struct {
	tick int
	off  bool
	key  uint8
}

// Build turns note events into a single-track SMF. Notes outside the MIDI range and
// notes without duration are skipped.
func Build(notes []expander.NoteEvent, opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()

	edges := make([]noteEdge, 0, len(notes)*2)
	for _, n := range notes {
		if n.Duration <= 0 || n.Pitch < 0 || n.Pitch > 127 || n.Tick < 0 {
			continue
		}
		key := uint8(n.Pitch)
		edges = append(edges,
			noteEdge{tick: n.Tick, key: key},
			noteEdge{tick: n.Tick + n.Duration, off: true, key: key},
		)
	}

	// note offs first so repeated pitches retrigger
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].tick != edges[j].tick {
			return edges[i].tick < edges[j].tick
		}
		return edges[i].off && !edges[j].off
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.Tempo))

	last := 0
	for _, e := range edges {
		delta := uint32(e.tick - last)
		last = e.tick
		if e.off {
			tr.Add(delta, midi.NoteOff(opts.Channel, e.key))
		} else {
			tr.Add(delta, midi.NoteOn(opts.Channel, e.key, opts.Velocity))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}
	return s, nil
}

// Write renders note events as a Standard MIDI File to w
func Write(w io.Writer, notes []expander.NoteEvent, opts Options) error {
	s, err := Build(notes, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}
