package rhythm

// Slice projects a pattern repeated from tick 0 onto [startTick, startTick+duration).
// A window that starts inside an item yields a truncated fragment of that item first;
// items are otherwise emitted whole, except the last one which is cut at the window end.
func Slice(p Pattern, startTick, duration int) ([]Event, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return []Event{}, nil
	}

	cycle := p.CycleLength()
	pos := startTick % cycle
	if pos < 0 {
		pos += cycle
	}

	events := make([]Event, 0, len(p))
	remaining := duration
	filled := 0

	// prev is the last item at or before pos, with its virtual offset. Before the first
	// item is visited it is the final item of the preceding cycle.
	prev := p[len(p)-1]
	prevOffset := prev.Offset - cycle

	emit := func(item Item, itemOffset int) {
		use := item.Duration - (pos - itemOffset)
		if remaining < use {
			use = remaining
		}
		events = append(events, Event{Tick: startTick + filled, Voicing: item.Voicing, Duration: use})
		pos += use
		filled += use
		remaining -= use
		prev, prevOffset = item, itemOffset
	}

	for i := 0; remaining > 0; {
		item := p[i%len(p)]
		offset := item.Offset + (i/len(p))*cycle

		switch {
		case offset < pos:
			prev, prevOffset = item, offset
			i++
		case offset == pos:
			emit(item, offset)
			i++
		default:
			emit(prev, prevOffset)
		}
	}

	return events, nil
}

// Fit restarts the pattern at tick and stretches or truncates it to exactly duration.
// Items are copied until their running total reaches duration, the item crossing the
// end is shortened, and if the pattern is too short its last item is lengthened.
func Fit(p Pattern, tick, duration int) ([]Event, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return []Event{}, nil
	}

	events := make([]Event, 0, len(p))
	total := 0
	for _, item := range p {
		ev := Event{Tick: tick + item.Offset, Voicing: item.Voicing, Duration: item.Duration}
		total += item.Duration
		if total >= duration {
			ev.Duration -= total - duration
			events = append(events, ev)
			return events, nil
		}
		events = append(events, ev)
	}

	events[len(events)-1].Duration += duration - total
	return events, nil
}

// Sustain is the rhythm used when no pattern is given: one default event for the chord
func Sustain(tick, duration int) []Event {
	return []Event{{Tick: tick, Voicing: VoicingDefault, Duration: duration}}
}
