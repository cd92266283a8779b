package patterns

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

var (
	// ErrNotFound is returned when no pattern has the requested name
	ErrNotFound = errors.New("rhythm pattern not found")
	// ErrReadOnly is returned when a built-in pattern would be overwritten
	ErrReadOnly = errors.New("built-in rhythm patterns cannot be replaced")
	// ErrInvalidName is returned for names outside [a-z0-9_-]
	ErrInvalidName = errors.New("invalid rhythm pattern name")
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// NamedPattern is a rhythm pattern with a name
type NamedPattern struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Pattern     rhythm.Pattern `json:"pattern"`
	Builtin     bool           `json:"builtin"`
}

// Store provides named rhythm patterns. Built-ins are always available.
type Store interface {
	List(ctx context.Context) ([]NamedPattern, error)
	Get(ctx context.Context, name string) (*NamedPattern, error)
	Put(ctx context.Context, p NamedPattern) error
}

func validate(p NamedPattern) error {
	if !namePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, p.Name)
	}
	if _, ok := builtins[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrReadOnly, p.Name)
	}
	return p.Pattern.Validate()
}

// MemoryStore keeps user patterns in memory, used when no database is configured
type MemoryStore struct {
	mu              sync.RWMutex
	ticksPerQuarter int
	patterns        map[string]NamedPattern
}

// NewMemoryStore creates an empty store on top of the built-ins
func NewMemoryStore(ticksPerQuarter int) *MemoryStore {
	return &MemoryStore{
		ticksPerQuarter: ticksPerQuarter,
		patterns:        make(map[string]NamedPattern),
	}
}

// List returns built-ins followed by stored patterns, each sorted by name
func (s *MemoryStore) List(ctx context.Context) ([]NamedPattern, error) {
	out := listBuiltins(s.ticksPerQuarter)

	s.mu.RLock()
	stored := make([]NamedPattern, 0, len(s.patterns))
	for _, p := range s.patterns {
		stored = append(stored, p)
	}
	s.mu.RUnlock()

	sort.Slice(stored, func(i, j int) bool { return stored[i].Name < stored[j].Name })
	return append(out, stored...), nil
}

// Get looks a pattern up by name
func (s *MemoryStore) Get(ctx context.Context, name string) (*NamedPattern, error) {
	if p, ok := Builtin(name, s.ticksPerQuarter); ok {
		return p, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	p.Pattern = append(rhythm.Pattern(nil), p.Pattern...)
	return &p, nil
}

// Put stores or replaces a user pattern
func (s *MemoryStore) Put(ctx context.Context, p NamedPattern) error {
	if err := validate(p); err != nil {
		return err
	}
	p.Builtin = false
	p.Pattern = append(rhythm.Pattern(nil), p.Pattern...)

	s.mu.Lock()
	s.patterns[p.Name] = p
	s.mu.Unlock()
	return nil
}

func listBuiltins(ticksPerQuarter int) []NamedPattern {
	names := BuiltinNames()
	out := make([]NamedPattern, 0, len(names))
	for _, name := range names {
		p, _ := Builtin(name, ticksPerQuarter)
		out = append(out, *p)
	}
	return out
}
