package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/magda-chords/internal/chart"
	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/expander"
	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/metrics"
	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
)

// ErrInvalidRequest marks errors caused by the caller's input
var ErrInvalidRequest = errors.New("invalid request")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// ExpansionService runs expansion requests against the configured pattern store
type ExpansionService struct {
	cfg     *config.Config
	store   patterns.Store
	sentry  *metrics.SentryMetrics
	metrics *metrics.Client
}

// NewExpansionService creates the service. cw may be nil.
func NewExpansionService(cfg *config.Config, store patterns.Store, cw *metrics.Client) *ExpansionService {
	return &ExpansionService{
		cfg:     cfg,
		store:   store,
		sentry:  metrics.NewSentryMetrics(),
		metrics: cw,
	}
}

// CheckSpan rejects windows longer than the configured limit
func (s *ExpansionService) CheckSpan(ticks int) error {
	if limit := s.cfg.SpanLimit(); ticks > limit {
		return invalid("span of %d ticks exceeds the limit of %d", ticks, limit)
	}
	return nil
}

// ResolvePattern turns a pattern source into a validated pattern; nil when the source is empty
func (s *ExpansionService) ResolvePattern(ctx context.Context, src models.PatternSource) (rhythm.Pattern, error) {
	set := 0
	for _, given := range []bool{len(src.Pattern) > 0, src.PatternName != "", src.Grid != ""} {
		if given {
			set++
		}
	}
	if set > 1 {
		return nil, invalid("pattern, pattern_name and grid are mutually exclusive")
	}

	switch {
	case len(src.Pattern) > 0:
		if err := src.Pattern.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return src.Pattern, nil
	case src.PatternName != "":
		named, err := s.store.Get(ctx, src.PatternName)
		if err != nil {
			return nil, err
		}
		return named.Pattern, nil
	case src.Grid != "":
		p, err := rhythm.ParseGrid(src.Grid, src.Step)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return p, nil
	}
	return nil, nil
}

// Expand runs a full expansion for a request
func (s *ExpansionService) Expand(ctx context.Context, source string, req models.ExpandRequest) (*models.ExpandResponse, error) {
	mode, err := chords.ParseMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var events []expander.ChordEvent
	useEntire := req.UseEntirePattern
	src := req.PatternSource

	switch {
	case req.Chart != "" && len(req.Chords) > 0:
		return nil, invalid("chart and chords are mutually exclusive")
	case req.Chart != "":
		parser, err := chart.NewParser()
		if err != nil {
			return nil, err
		}
		c, err := parser.Parse(ctx, req.Chart)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		if req.EndTick > 0 {
			c.EndTick = req.EndTick
		}
		events = c.Events()
		if src.IsEmpty() {
			src = models.PatternSource{Pattern: c.Pattern, PatternName: c.PatternName}
			useEntire = useEntire || c.UseEntirePattern
		}
	case len(req.Chords) > 0:
		end := req.EndTick
		if end <= 0 {
			return nil, invalid("end_tick is required with chords")
		}
		events = expander.Collect(req.Chords, end)
	default:
		return nil, invalid("no chords given")
	}

	for _, ev := range events {
		if err := s.CheckSpan(ev.Tick + ev.Duration); err != nil {
			return nil, err
		}
	}

	pattern, err := s.ResolvePattern(ctx, src)
	if err != nil {
		return nil, err
	}

	root, err := s.defaultRoot(req.DefaultRoot)
	if err != nil {
		return nil, err
	}

	opts := expander.Options{
		Chords:           s.cfg.Compile(mode),
		Pattern:          pattern,
		UseEntirePattern: useEntire,
		DefaultRoot:      root,
	}

	start := time.Now()
	finish := s.sentry.StartExpansion(ctx, source)
	result, err := expander.Run(events, opts)
	if err != nil {
		finish(metrics.ExpansionStats{Chords: len(events), Duration: time.Since(start)})
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	stats := metrics.ExpansionStats{
		Chords:   len(events),
		Expanded: result.Expanded,
		Failed:   result.Failed,
		Warnings: result.Warnings,
		Notes:    len(result.Notes),
		Duration: time.Since(start),
	}
	finish(stats)
	s.metrics.RecordExpansion(source, stats)

	logger.Info("Expansion completed", logger.Fields{
		"source":   source,
		"mode":     mode.String(),
		"chords":   stats.Chords,
		"failed":   stats.Failed,
		"warnings": stats.Warnings,
		"notes":    stats.Notes,
	})

	return &models.ExpandResponse{Mode: mode, Result: result}, nil
}

func (s *ExpansionService) defaultRoot(override string) (*chords.Note, error) {
	if override != "" {
		n, err := chords.ParseNote(override)
		if err != nil {
			return nil, fmt.Errorf("%w: default_root: %w", ErrInvalidRequest, err)
		}
		return &n, nil
	}
	return s.cfg.Root()
}
