package chords

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChordMap maps scale degrees (1, 3, 5, 7, 9, ...) to an alteration in semitones.
// Iteration order is insertion order. Pruning depends on it, so never sort the keys.
type ChordMap struct {
	order []int
	alts  map[int]int
}

// DegreeAlteration is a single entry of a ChordMap
type DegreeAlteration struct {
	Degree     int `json:"degree"`
	Alteration int `json:"alteration"`
}

// NewChordMap creates an empty chord map
func NewChordMap() *ChordMap {
	return &ChordMap{alts: make(map[int]int)}
}

// Set assigns an alteration to a degree. A degree that is already present keeps its position.
func (m *ChordMap) Set(degree, alteration int) {
	if _, ok := m.alts[degree]; !ok {
		m.order = append(m.order, degree)
	}
	m.alts[degree] = alteration
}

// Get returns the alteration for a degree
func (m *ChordMap) Get(degree int) (int, bool) {
	alt, ok := m.alts[degree]
	return alt, ok
}

// Delete removes a degree if present
func (m *ChordMap) Delete(degree int) {
	if _, ok := m.alts[degree]; !ok {
		return
	}
	delete(m.alts, degree)
	for i, d := range m.order {
		if d == degree {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of degrees in the map
func (m *ChordMap) Len() int {
	return len(m.order)
}

// Degrees returns the degrees in insertion order
func (m *ChordMap) Degrees() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)
	return out
}

// Entries returns degree/alteration pairs in insertion order
func (m *ChordMap) Entries() []DegreeAlteration {
	out := make([]DegreeAlteration, 0, len(m.order))
	for _, d := range m.order {
		out = append(out, DegreeAlteration{Degree: d, Alteration: m.alts[d]})
	}
	return out
}

// Clone returns an independent copy with the same order
func (m *ChordMap) Clone() *ChordMap {
	c := NewChordMap()
	for _, d := range m.order {
		c.Set(d, m.alts[d])
	}
	return c
}

// String renders the map as {1:0, 3:-1, 5:0}
func (m *ChordMap) String() string {
	parts := make([]string, 0, len(m.order))
	for _, d := range m.order {
		parts = append(parts, fmt.Sprintf("%d:%d", d, m.alts[d]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the map as an ordered list of entries
func (m *ChordMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}
