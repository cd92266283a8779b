package patterns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// RhythmPattern is the persisted form of a user pattern
type RhythmPattern struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `json:"description"`
	Items       string         `gorm:"type:text;not null" json:"items"` // JSON-encoded rhythm.Pattern
}

func toRow(p NamedPattern) (*RhythmPattern, error) {
	items, err := json.Marshal(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pattern %q: %w", p.Name, err)
	}
	return &RhythmPattern{Name: p.Name, Description: p.Description, Items: string(items)}, nil
}

func fromRow(row RhythmPattern) (*NamedPattern, error) {
	var pattern rhythm.Pattern
	if err := json.Unmarshal([]byte(row.Items), &pattern); err != nil {
		return nil, fmt.Errorf("failed to decode pattern %q: %w", row.Name, err)
	}
	return &NamedPattern{Name: row.Name, Description: row.Description, Pattern: pattern}, nil
}

// GormStore persists user patterns in Postgres
type GormStore struct {
	db              *gorm.DB
	ticksPerQuarter int
}

// Open connects to Postgres and migrates the pattern table
func Open(dsn string, ticksPerQuarter int) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewGormStore(db, ticksPerQuarter)
}

// NewGormStore wraps an open connection and migrates the pattern table
func NewGormStore(db *gorm.DB, ticksPerQuarter int) (*GormStore, error) {
	if err := db.AutoMigrate(&RhythmPattern{}); err != nil {
		return nil, fmt.Errorf("failed to migrate rhythm patterns: %w", err)
	}
	logger.Info("Rhythm pattern store ready", logger.Fields{"backend": db.Dialector.Name()})
	return &GormStore{db: db, ticksPerQuarter: ticksPerQuarter}, nil
}

// List returns built-ins followed by stored patterns sorted by name
func (s *GormStore) List(ctx context.Context) ([]NamedPattern, error) {
	var rows []RhythmPattern
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list rhythm patterns: %w", err)
	}

	out := listBuiltins(s.ticksPerQuarter)
	for _, row := range rows {
		p, err := fromRow(row)
		if err != nil {
			logger.Warn("Skipping unreadable rhythm pattern", logger.Fields{"name": row.Name, "error": err.Error()})
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

// Get looks a pattern up by name
func (s *GormStore) Get(ctx context.Context, name string) (*NamedPattern, error) {
	if p, ok := Builtin(name, s.ticksPerQuarter); ok {
		return p, nil
	}

	var row RhythmPattern
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rhythm pattern %q: %w", name, err)
	}
	return fromRow(row)
}

// Put stores or replaces a user pattern
func (s *GormStore) Put(ctx context.Context, p NamedPattern) error {
	if err := validate(p); err != nil {
		return err
	}
	row, err := toRow(p)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "items", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to save rhythm pattern %q: %w", p.Name, err)
	}
	return nil
}
