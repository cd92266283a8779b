package api

import (
	"github.com/Conceptual-Machines/magda-chords/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-chords/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/metrics"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP API. cw may be nil.
func SetupRouter(cfg *config.Config, store patterns.Store, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	router.Use(apimiddleware.CORS())

	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	metricsHandler := handlers.NewMetricsHandler(cfg, version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	expansion := services.NewExpansionService(cfg, store, cw)

	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.Auth(cfg.IsGatewayMode()))
	{
		chordsHandler := handlers.NewChordsHandler(cfg)
		v1.POST("/chords/parse", chordsHandler.Parse)
		v1.POST("/chords/compile", chordsHandler.Compile)

		rhythmHandler := handlers.NewRhythmHandler(expansion)
		v1.POST("/rhythm/slice", rhythmHandler.Slice)

		expandHandler := handlers.NewExpandHandler(cfg, expansion)
		v1.POST("/expand", expandHandler.Expand)
		v1.POST("/expand/midi", expandHandler.ExpandMIDI)

		patternsHandler := handlers.NewPatternsHandler(store)
		v1.GET("/patterns", patternsHandler.List)
		v1.GET("/patterns/:name", patternsHandler.Get)
		v1.PUT("/patterns/:name", patternsHandler.Put)
	}

	return router
}
