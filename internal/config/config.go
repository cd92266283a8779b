package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/midiexport"
)

// DefaultMaxSpanTicks is 512 bars of 4/4 at 480 ticks per quarter
const DefaultMaxSpanTicks = 512 * 4 * 480

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the gateway
	AuthMode string

	// DatabaseURL enables persisted rhythm patterns; empty keeps them in memory
	DatabaseURL string

	// Chord expansion
	CondensedMaxNotes int
	TicksPerQuarter   int
	DefaultRoot       string // e.g. "C"; empty means a rootless first chord fails
	MaxSpanTicks      int    // longest window a single request may slice or expand

	// MIDI export
	MIDIVelocity int
	MIDIChannel  int
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CondensedMaxNotes: getEnvInt("CONDENSED_MAX_NOTES", chords.DefaultMaxNotes),
		TicksPerQuarter:   getEnvInt("TICKS_PER_QUARTER", midiexport.DefaultTicksPerQuarter),
		DefaultRoot:       getEnv("DEFAULT_ROOT", ""),
		MaxSpanTicks:      getEnvInt("MAX_SPAN_TICKS", DefaultMaxSpanTicks),
		MIDIVelocity:      getEnvInt("MIDI_VELOCITY", midiexport.DefaultVelocity),
		MIDIChannel:       getEnvInt("MIDI_CHANNEL", 0),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// IsGatewayMode returns true if running behind the gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// UsesDatabase reports whether rhythm patterns are persisted
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// SpanLimit is MaxSpanTicks, or the default when unset
func (c *Config) SpanLimit() int {
	if c.MaxSpanTicks <= 0 {
		return DefaultMaxSpanTicks
	}
	return c.MaxSpanTicks
}

// Compile returns chord compile options for the given mode
func (c *Config) Compile(mode chords.Mode) chords.Options {
	return chords.Options{Mode: mode, MaxNotes: c.CondensedMaxNotes}
}

// Root parses DefaultRoot; nil when unset
func (c *Config) Root() (*chords.Note, error) {
	if c.DefaultRoot == "" {
		return nil, nil
	}
	n, err := chords.ParseNote(c.DefaultRoot)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_ROOT: %w", err)
	}
	return &n, nil
}

// MIDI returns export options
func (c *Config) MIDI() midiexport.Options {
	channel := c.MIDIChannel
	if channel < 0 || channel > 15 {
		channel = 0
	}
	velocity := c.MIDIVelocity
	if velocity < 1 || velocity > 127 {
		velocity = midiexport.DefaultVelocity
	}
	return midiexport.Options{
		TicksPerQuarter: c.TicksPerQuarter,
		Channel:         uint8(channel),
		Velocity:        uint8(velocity),
	}
}
