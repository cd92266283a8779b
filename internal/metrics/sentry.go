package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// ExpansionStats summarizes one expansion run
type ExpansionStats struct {
	Chords   int
	Expanded int
	Failed   int
	Warnings int
	Notes    int
	Duration time.Duration
}

// StartExpansion opens a span around an expansion run; call the returned func with the result
func (m *SentryMetrics) StartExpansion(ctx context.Context, source string) func(ExpansionStats) {
	if !m.enabled {
		return func(ExpansionStats) {}
	}

	span := sentry.StartSpan(ctx, "chords.expand")
	span.SetTag("source", source)
	span.Description = fmt.Sprintf("Chord expansion: %s", source)

	return func(stats ExpansionStats) {
		span.SetData("chords", stats.Chords)
		span.SetData("expanded", stats.Expanded)
		span.SetData("failed", stats.Failed)
		span.SetData("warnings", stats.Warnings)
		span.SetData("notes", stats.Notes)
		span.SetData("duration_ms", stats.Duration.Milliseconds())

		if stats.Failed == 0 {
			span.Status = sentry.SpanStatusOK
		} else {
			span.Status = sentry.SpanStatusInvalidArgument
		}
		span.Finish()
	}
}
