package expander

import (
	"sort"
	"strings"
)

// Annotation is a chord symbol found in a score at an absolute tick
type Annotation struct {
	Tick int    `json:"tick"`
	Text string `json:"text"`
}

// ChordEvent is a chord symbol with the span of score it covers
type ChordEvent struct {
	Tick     int    `json:"tick"`
	Duration int    `json:"duration"`
	Symbol   string `json:"symbol"`
}

// Collect turns score annotations into chord events. Blank annotations are skipped; when
// several annotations share a tick (one per staff) the last one wins. Each event lasts
// until the next one, and the final event lasts until scoreEnd.
func Collect(annotations []Annotation, scoreEnd int) []ChordEvent {
	byTick := make(map[int]string, len(annotations))
	for _, a := range annotations {
		text := strings.TrimSpace(a.Text)
		if text == "" {
			continue
		}
		byTick[a.Tick] = text
	}

	events := make([]ChordEvent, 0, len(byTick))
	for tick, text := range byTick {
		events = append(events, ChordEvent{Tick: tick, Symbol: text})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	for i := range events {
		end := scoreEnd
		if i+1 < len(events) {
			end = events[i+1].Tick
		}
		if end < events[i].Tick {
			end = events[i].Tick
		}
		events[i].Duration = end - events[i].Tick
	}
	return events
}
