package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/gin-gonic/gin"
)

type ChordsHandler struct {
	cfg *config.Config
}

func NewChordsHandler(cfg *config.Config) *ChordsHandler {
	return &ChordsHandler{cfg: cfg}
}

// Parse returns the structured form of a chord symbol
func (h *ChordsHandler) Parse(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ParseResponse{
		Symbol: req.Symbol,
		Spec:   chords.Parse(req.Symbol),
	})
}

// Compile turns a chord symbol into pitches
func (h *ChordsHandler) Compile(c *gin.Context) {
	var req models.CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := chords.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := chords.RootState{}
	switch {
	case req.PreviousRoot != "":
		root, err := chords.ParseNote(req.PreviousRoot)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "previous_root: " + err.Error()})
			return
		}
		state = chords.NewRootState(root)
	default:
		root, err := h.cfg.Root()
		if err != nil {
			respondError(c, "Invalid default root", err)
			return
		}
		if root != nil {
			state = chords.NewRootState(*root)
		}
	}

	chord, next, err := chords.Compile(req.Symbol, h.cfg.Compile(mode), state)
	if err != nil {
		respondError(c, "Chord compile failed", err)
		return
	}

	root, _ := next.Root()
	c.JSON(http.StatusOK, models.CompileResponse{
		Symbol:  chord.Symbol,
		Mode:    mode,
		Root:    root.String(),
		Pitches: chord.Pitches,
		Degrees: chord.Degrees,
		Spec:    chord.Spec,
	})
}
