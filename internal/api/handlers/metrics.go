package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/gin-gonic/gin"
)

const bytesToMB = 1024 * 1024

// MetricsHandler reports process stats and the chord engine settings in effect
type MetricsHandler struct {
	startTime time.Time
	version   string
	cfg       *config.Config
}

func NewMetricsHandler(cfg *config.Config, version string) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		cfg:       cfg,
	}
}

// formatUptime renders d as 1h2m3.45s, dropping leading zero units
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := (d - time.Duration(hours)*time.Hour - time.Duration(minutes)*time.Minute).Seconds()

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm%.2fs", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%.2fs", minutes, seconds)
	default:
		return fmt.Sprintf("%.2fs", seconds)
	}
}

type MetricsResponse struct {
	Status    string        `json:"status"`
	Uptime    string        `json:"uptime"`
	Timestamp string        `json:"timestamp"`
	Version   string        `json:"version"`
	StartTime string        `json:"start_time"`
	System    SystemMetrics `json:"system"`
	Engine    EngineInfo    `json:"engine"`
}

type SystemMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	NumGC        uint32 `json:"num_gc"`
}

// EngineInfo is the chord and rhythm configuration the server runs with
type EngineInfo struct {
	CondensedMaxNotes int      `json:"condensed_max_notes"`
	TicksPerQuarter   int      `json:"ticks_per_quarter"`
	DefaultRoot       string   `json:"default_root,omitempty"`
	MaxSpanTicks      int      `json:"max_span_ticks"`
	PatternStore      string   `json:"pattern_store"`
	BuiltinPatterns   []string `json:"builtin_patterns"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	store := "memory"
	if h.cfg.UsesDatabase() {
		store = "postgres"
	}

	c.JSON(http.StatusOK, MetricsResponse{
		Status:    "healthy",
		Uptime:    formatUptime(time.Since(h.startTime)),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		System: SystemMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesToMB,
			NumGC:        m.NumGC,
		},
		Engine: EngineInfo{
			CondensedMaxNotes: h.cfg.CondensedMaxNotes,
			TicksPerQuarter:   h.cfg.TicksPerQuarter,
			DefaultRoot:       h.cfg.DefaultRoot,
			MaxSpanTicks:      h.cfg.SpanLimit(),
			PatternStore:      store,
			BuiltinPatterns:   patterns.BuiltinNames(),
		},
	})
}
