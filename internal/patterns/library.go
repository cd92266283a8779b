package patterns

import (
	"fmt"
	"sort"

	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

// DefaultTicksPerQuarter is the resolution built-in patterns are expressed in
const DefaultTicksPerQuarter = 480

// builtin is a named grid; Division is grid steps per quarter note
type builtin struct {
	Grid        string
	Division    int
	Description string
}

// Predefined rhythm patterns, one cycle each
var builtins = map[string]builtin{
	"whole": {
		Grid:        "x_______",
		Division:    2,
		Description: "one chord per 4/4 bar",
	},
	"half": {
		Grid:        "x___x___",
		Division:    2,
		Description: "two half notes per bar",
	},
	"quarters": {
		Grid:        "x_x_x_x_",
		Division:    2,
		Description: "four quarter notes per bar",
	},
	"eighths": {
		Grid:        "xxxxxxxx",
		Division:    2,
		Description: "straight eighth notes",
	},
	"waltz": {
		Grid:        "b_n_n_",
		Division:    2,
		Description: "3/4 bass then two chords",
	},
	"bossa": {
		Grid:        "x__x__x__x__x__x",
		Division:    2,
		Description: "two-bar bossa nova comping",
	},
	"tresillo": {
		Grid:        "x__x__x_",
		Division:    2,
		Description: "3+3+2",
	},
	"stride": {
		Grid:        "b_n_b_n_",
		Division:    2,
		Description: "stride piano: bass, chord, bass, chord",
	},
	"offbeat": {
		Grid:        "-x-x-x-x",
		Division:    2,
		Description: "chords on the ands, rests on the beats",
	},
	"anticipation": {
		Grid:        "x___x__x____x__x",
		Division:    4,
		Description: "pushes before beats 3 and 1",
	},
}

// BuiltinNames returns the built-in pattern names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a built-in pattern scaled to ticksPerQuarter
func Builtin(name string, ticksPerQuarter int) (*NamedPattern, bool) {
	b, ok := builtins[name]
	if !ok {
		return nil, false
	}
	if ticksPerQuarter <= 0 {
		ticksPerQuarter = DefaultTicksPerQuarter
	}

	pattern, err := rhythm.ParseGrid(b.Grid, ticksPerQuarter/b.Division)
	if err != nil {
		// built-in grids are fixed, so this is a programming error
		panic(fmt.Sprintf("built-in pattern %q: %v", name, err))
	}

	return &NamedPattern{
		Name:        name,
		Description: b.Description,
		Pattern:     pattern,
		Builtin:     true,
	}, true
}
