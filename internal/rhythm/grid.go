package rhythm

import (
	"fmt"
	"strings"
)

// DefaultStep is the grid resolution in ticks: an eighth note at 480 ticks per quarter
const DefaultStep = 240

var gridVoicings = map[rune]Voicing{
	'x': VoicingDefault,
	'b': VoicingBass,
	'n': VoicingNonBass,
	'-': VoicingRest,
}

// ParseGrid reads a step grid such as "x-b_ n-x-". Each character is one step:
// x default, b bass, n nonbass, - rest, _ extends the previous item. Spaces and
// bar lines are ignored.
func ParseGrid(grid string, step int) (Pattern, error) {
	if step <= 0 {
		step = DefaultStep
	}

	var p Pattern
	offset := 0
	for i, r := range grid {
		switch r {
		case ' ', '|', '\t':
			continue
		case '_':
			if len(p) == 0 {
				return nil, fmt.Errorf("%w: grid %q starts with a tie", ErrMalformedPattern, grid)
			}
			p[len(p)-1].Duration += step
		default:
			v, ok := gridVoicings[r]
			if !ok {
				return nil, fmt.Errorf("%w: grid %q has unknown step %q at %d", ErrMalformedPattern, grid, r, i)
			}
			p = append(p, Item{Offset: offset, Duration: step, Voicing: v})
		}
		offset += step
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Grid renders a pattern back to grid notation. Durations that are not a multiple of
// step are rounded down, with a minimum of one step per item.
func Grid(p Pattern, step int) string {
	if step <= 0 {
		step = DefaultStep
	}
	symbols := make(map[Voicing]rune, len(gridVoicings))
	for r, v := range gridVoicings {
		symbols[v] = r
	}

	var b strings.Builder
	for _, item := range p {
		steps := item.Duration / step
		if steps < 1 {
			steps = 1
		}
		b.WriteRune(symbols[item.Voicing])
		b.WriteString(strings.Repeat("_", steps-1))
	}
	return b.String()
}
