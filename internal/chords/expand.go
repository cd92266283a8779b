package chords

// triad is a base chord shape chosen by quality
type triad struct {
	third, fifth int
	seventh      int
	// setSeventh adds degree 7 straight away (diminished and half-diminished)
	setSeventh bool
}

var triads = map[Quality]triad{
	QualityMinor:          {third: -1, fifth: 0, seventh: -1},
	QualityDiminished:     {third: -1, fifth: -1, seventh: -2, setSeventh: true},
	QualityHalfDiminished: {third: -1, fifth: -1, seventh: -1, setSeventh: true},
	QualityAugmented:      {third: 0, fifth: 1, seventh: -1},
	QualityMajor:          {third: 0, fifth: 0, seventh: 0},
}

// dominant is used for unspecified and triangle chords
var dominant = triad{third: 0, fifth: 0, seventh: -1}

// extensionCascade lists the degrees implied by a primary extension, highest first.
// Each entry includes everything below it: a 13th chord also has the 11th, 9th and 7th.
var extensionCascade = map[string][]int{
	"13": {13, 11, 9, 7},
	"11": {11, 9, 7},
	"9":  {9, 7},
	"7":  {7},
}

// Expand builds the ChordMap described by a ChordSpec. Steps run in a fixed order since
// later steps overwrite or delete degrees set by earlier ones.
func Expand(spec *ChordSpec) *ChordMap {
	m := NewChordMap()

	base, ok := triads[spec.Quality]
	if !ok {
		base = dominant
	}
	m.Set(1, 0)
	m.Set(3, base.third)
	m.Set(5, base.fifth)
	seventh := base.seventh
	if base.setSeventh {
		m.Set(7, seventh)
	}

	if spec.Quality == QualityTriangle {
		seventh = 0
		m.Set(7, seventh)
	}

	if spec.SixNine {
		m.Set(6, 0)
		m.Set(9, 0)
	}

	for _, degree := range spec.Drop {
		m.Delete(degree)
	}

	number := spec.Number
	if spec.MajorAlt != "" {
		seventh = 0
		number = spec.MajorAlt
	}

	if degrees, ok := extensionCascade[number]; ok {
		for _, degree := range degrees {
			if degree == 7 {
				m.Set(7, seventh)
			} else {
				m.Set(degree, 0)
			}
		}
	} else {
		switch number {
		case "6":
			m.Set(6, 0)
		case "5":
			// power chord
			m.Delete(3)
		}
	}

	for _, degree := range spec.Sus {
		m.Set(degree, 0)
		m.Delete(3)
	}

	for _, degree := range spec.Add {
		m.Set(degree, 0)
	}

	// "alt" is left to the performer; 7#5#9 is a common reading
	if spec.Alt {
		m.Set(7, -1)
		m.Set(5, 1)
		m.Set(9, 1)
	}

	for _, a := range spec.Alter {
		m.Set(a.Degree, a.Value())
	}

	return m
}
