package chords

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-chords/internal/logger"
)

// Quality is the triad/seventh family named in the front of a chord symbol
type Quality int

const (
	// QualityUnspecified defaults to a dominant chord
	QualityUnspecified Quality = iota
	QualityMajor
	QualityMinor
	QualityDiminished
	QualityHalfDiminished
	QualityAugmented
	// QualityTriangle is the major-seventh marker (Δ, ^, t)
	QualityTriangle
)

var qualityNames = map[Quality]string{
	QualityUnspecified:    "unspecified",
	QualityMajor:          "major",
	QualityMinor:          "minor",
	QualityDiminished:     "diminished",
	QualityHalfDiminished: "half-diminished",
	QualityAugmented:      "augmented",
	QualityTriangle:       "triangle",
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// MarshalJSON encodes the quality by name
func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// Alteration raises or lowers a degree by a semitone, e.g. the b9 in G7b9
type Alteration struct {
	Degree int  `json:"degree"`
	Sharp  bool `json:"sharp,omitempty"`
	Flat   bool `json:"flat,omitempty"`
}

// Value is +1 for a sharp and -1 otherwise
func (a Alteration) Value() int {
	if a.Sharp {
		return 1
	}
	return -1
}

// ChordSpec is the structured form of a chord symbol
type ChordSpec struct {
	Root     Note         `json:"root"`
	Quality  Quality      `json:"quality"`
	Number   string       `json:"number,omitempty"`
	SixNine  bool         `json:"six_nine,omitempty"`
	MajorAlt string       `json:"major_alt,omitempty"`
	Alt      bool         `json:"alt,omitempty"`
	Sus      []int        `json:"sus"`
	Add      []int        `json:"add"`
	Drop     []int        `json:"drop"`
	Alter    []Alteration `json:"alter"`
	Bass     *Note        `json:"bass,omitempty"`

	// Unparsed holds any text the grammar could not consume
	Unparsed []string `json:"unparsed,omitempty"`
}

// grammarMode says where in the symbol a token was found. A bare number is the primary
// extension in front position and an added degree in middle position.
type grammarMode int

const (
	modeFront grammarMode = iota
	modeMiddle
)

const (
	majorTokens = `Major|major|Maj|maj|Ma|ma|M|j`
	sharpToken  = `[#♯]`
	flatToken   = `[b♭]`
)

var (
	// root, accidentals, quality, primary number. Matches at most once.
	frontPattern = regexp.MustCompile(`^([A-Ga-g])(` + sharpToken + `)?(` + flatToken + `)?` +
		`(?:(` + majorTokens + `)|(minor|min|mi|m|-|−)|(dim|o|°)|(ø|O|0)|(aug|\+)|([tΔ∆^]))?` +
		`([0-9]+)?`)

	// six-nine, major+number, alt, sus, add, drop/no, bare number, alteration. Repeatable.
	middlePattern = regexp.MustCompile(`^(?:` +
		`(69|6-9|6\+9|6/9)|` +
		`(?:` + majorTokens + `)([0-9]+)|` +
		`(alt)|` +
		`(sus)([0-9])?|` +
		`add([0-9]+)|` +
		`(?:drop|no)([0-9]+)|` +
		`([0-9]+)|` +
		`(` + sharpToken + `)?(` + flatToken + `)?([0-9]+)` +
		`)`)

	// bass note suffix
	backPattern = regexp.MustCompile(`^/([A-G])(` + sharpToken + `)?(` + flatToken + `)?`)

	enclosedPattern = regexp.MustCompile(`^\((.*)\)$`)
	extraPattern    = regexp.MustCompile(`\((.*?)\)`)
)

const defaultSusDegree = 4

// symbolParser accumulates one ChordSpec from a chord symbol
type symbolParser struct {
	spec *ChordSpec
}

// Parse converts chord symbol text into a ChordSpec. Parsing is best effort: text the
// grammar cannot consume is recorded in Unparsed and logged as one warning per symbol.
func Parse(text string) *ChordSpec {
	p := &symbolParser{
		spec: &ChordSpec{
			Sus:   []int{},
			Add:   []int{},
			Drop:  []int{},
			Alter: []Alteration{},
		},
	}

	symbol := text
	if m := enclosedPattern.FindStringSubmatch(symbol); m != nil {
		symbol = m[1]
	}

	// Pull out parenthesised groups such as the (b9) in C7(b9)
	var extras []string
	for {
		loc := extraPattern.FindStringSubmatchIndex(symbol)
		if loc == nil {
			break
		}
		extras = append(extras, symbol[loc[2]:loc[3]])
		symbol = symbol[:loc[0]] + symbol[loc[1]:]
	}

	symbol = p.parseFront(symbol)
	symbol = p.parseMiddle(symbol)
	if symbol != "" {
		symbol = p.parseBack(symbol)
		if symbol != "" {
			p.unparsed(symbol)
		}
	}

	for _, extra := range extras {
		if rest := p.parseMiddle(extra); rest != "" {
			p.unparsed(rest)
		}
	}

	if len(p.spec.Unparsed) > 0 {
		logger.Warn("Chord symbol not fully parsed", logger.Fields{
			"symbol":   text,
			"unparsed": strings.Join(p.spec.Unparsed, ","),
		})
	}
	return p.spec
}

func (p *symbolParser) parseFront(symbol string) string {
	m := frontPattern.FindStringSubmatch(symbol)
	if m == nil {
		return symbol
	}

	spec := p.spec
	spec.Root = Note{Letter: m[1], Sharp: m[2] != "", Flat: m[3] != ""}
	switch {
	case m[4] != "":
		spec.Quality = QualityMajor
	case m[5] != "":
		spec.Quality = QualityMinor
	case m[6] != "":
		spec.Quality = QualityDiminished
	case m[7] != "":
		spec.Quality = QualityHalfDiminished
	case m[8] != "":
		spec.Quality = QualityAugmented
	case m[9] != "":
		spec.Quality = QualityTriangle
	}
	if m[10] != "" {
		p.number(m[10], modeFront)
	}

	return symbol[len(m[0]):]
}

// parseMiddle consumes middle tokens from the start of symbol until none match and
// returns what is left.
func (p *symbolParser) parseMiddle(symbol string) string {
	pos := 0
	for pos < len(symbol) {
		m := middlePattern.FindStringSubmatch(symbol[pos:])
		if m == nil || m[0] == "" {
			break
		}
		pos += len(m[0])

		spec := p.spec
		switch {
		case m[1] != "":
			spec.SixNine = true
		case m[2] != "":
			spec.MajorAlt = m[2]
		case m[3] != "":
			spec.Alt = true
		case m[4] != "":
			token := m[5]
			if token == "" {
				token = strconv.Itoa(defaultSusDegree)
			}
			if degree, ok := p.degree(token); ok {
				spec.Sus = append(spec.Sus, degree)
			}
		case m[6] != "":
			if degree, ok := p.degree(m[6]); ok {
				spec.Add = append(spec.Add, degree)
			}
		case m[7] != "":
			if degree, ok := p.degree(m[7]); ok {
				spec.Drop = append(spec.Drop, degree)
			}
		case m[8] != "":
			p.number(m[8], modeMiddle)
		case m[11] != "":
			if degree, ok := p.degree(m[11]); ok {
				spec.Alter = append(spec.Alter, Alteration{Degree: degree, Sharp: m[9] != "", Flat: m[10] != ""})
			}
		}
	}
	return symbol[pos:]
}

func (p *symbolParser) parseBack(symbol string) string {
	m := backPattern.FindStringSubmatch(symbol)
	if m == nil {
		return symbol
	}
	p.spec.Bass = &Note{Letter: m[1], Sharp: m[2] != "", Flat: m[3] != ""}
	return symbol[len(m[0]):]
}

// number interprets a bare numeral according to where it appeared
func (p *symbolParser) number(token string, mode grammarMode) {
	switch {
	case token == "69":
		p.spec.SixNine = true
	case mode == modeMiddle:
		if degree, ok := p.degree(token); ok {
			p.spec.Add = append(p.spec.Add, degree)
		}
	default:
		p.spec.Number = token
	}
}

// degree converts a degree token, rejecting anything that is not a positive integer
func (p *symbolParser) degree(token string) (int, bool) {
	degree, err := strconv.Atoi(token)
	if err != nil || degree < 1 {
		p.spec.Unparsed = append(p.spec.Unparsed, token)
		return 0, false
	}
	return degree, true
}

func (p *symbolParser) unparsed(residue string) {
	p.spec.Unparsed = append(p.spec.Unparsed, residue)
}

// HasRoot reports whether the symbol named its own root
func (s *ChordSpec) HasRoot() bool {
	return !s.Root.IsZero()
}

// Symbol reassembles a normalized display name, used in logs
func (s *ChordSpec) Symbol() string {
	var b strings.Builder
	b.WriteString(s.Root.String())
	if s.Quality != QualityUnspecified {
		b.WriteString("(" + s.Quality.String() + ")")
	}
	b.WriteString(s.Number)
	if s.Bass != nil {
		b.WriteString("/" + s.Bass.String())
	}
	return b.String()
}
