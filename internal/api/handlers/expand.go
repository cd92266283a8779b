package handlers

import (
	"bytes"
	"net/http"

	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/midiexport"
	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/Conceptual-Machines/magda-chords/internal/services"
	"github.com/gin-gonic/gin"
)

const midiContentType = "audio/midi"

type ExpandHandler struct {
	cfg     *config.Config
	service *services.ExpansionService
}

func NewExpandHandler(cfg *config.Config, service *services.ExpansionService) *ExpandHandler {
	return &ExpandHandler{cfg: cfg, service: service}
}

func (h *ExpandHandler) run(c *gin.Context, source string) (*models.ExpandResponse, bool) {
	var req models.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	resp, err := h.service.Expand(c.Request.Context(), source, req)
	if err != nil {
		respondError(c, "Expansion failed", err)
		return nil, false
	}
	return resp, true
}

// Expand compiles every chord of a score and lays out its rhythm
func (h *ExpandHandler) Expand(c *gin.Context) {
	resp, ok := h.run(c, "api")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExpandMIDI is Expand rendered as a Standard MIDI File
func (h *ExpandHandler) ExpandMIDI(c *gin.Context) {
	resp, ok := h.run(c, "api.midi")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := midiexport.Write(&buf, resp.Notes, h.cfg.MIDI()); err != nil {
		respondError(c, "MIDI export failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="chords.mid"`)
	c.Data(http.StatusOK, midiContentType, buf.Bytes())
}
