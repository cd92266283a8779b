package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/Conceptual-Machines/magda-chords/internal/services"
	"github.com/gin-gonic/gin"
)

type RhythmHandler struct {
	service *services.ExpansionService
}

func NewRhythmHandler(service *services.ExpansionService) *RhythmHandler {
	return &RhythmHandler{service: service}
}

// Slice projects a repeating pattern onto a time window
func (h *RhythmHandler) Slice(c *gin.Context) {
	var req models.SliceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern, pattern_name or grid is required"})
		return
	}

	if err := h.service.CheckSpan(req.Duration); err != nil {
		respondError(c, "Rhythm slice too long", err)
		return
	}

	pattern, err := h.service.ResolvePattern(c.Request.Context(), req.PatternSource)
	if err != nil {
		respondError(c, "Pattern lookup failed", err)
		return
	}

	events, err := rhythm.Slice(pattern, req.StartTick, req.Duration)
	if err != nil {
		respondError(c, "Rhythm slice failed", err)
		return
	}

	c.JSON(http.StatusOK, models.SliceResponse{
		CycleLength: pattern.CycleLength(),
		Events:      events,
	})
}
