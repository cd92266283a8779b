package chords

// Prune deletes degrees from m until it holds at most maxCount entries. The tonic goes first,
// then a perfect fifth, then the entry just before the most recently added one, so the top
// color tone survives while inner ones are dropped. A map already small enough is unchanged.
func Prune(m *ChordMap, maxCount int) {
	if maxCount < 0 {
		maxCount = 0
	}
	for m.Len() > maxCount {
		if _, ok := m.Get(1); ok {
			m.Delete(1)
			continue
		}
		if alt, ok := m.Get(5); ok && alt == 0 {
			m.Delete(5)
			continue
		}
		degrees := m.Degrees()
		if len(degrees) < 2 {
			m.Delete(degrees[0])
			continue
		}
		m.Delete(degrees[len(degrees)-2])
	}
}
