package handlers

import (
	"net/http"

	apimiddleware "github.com/Conceptual-Machines/magda-chords/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/gin-gonic/gin"
)

type PatternsHandler struct {
	store patterns.Store
}

func NewPatternsHandler(store patterns.Store) *PatternsHandler {
	return &PatternsHandler{store: store}
}

// List returns every available pattern
func (h *PatternsHandler) List(c *gin.Context) {
	all, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list patterns", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": all})
}

// Get returns one pattern, with its grid rendering
func (h *PatternsHandler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "Failed to load pattern", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pattern": p,
		"grid":    rhythm.Grid(p.Pattern, rhythm.DefaultStep),
	})
}

// Put stores a user pattern from items, a grid or recorded notes
func (h *PatternsHandler) Put(c *gin.Context) {
	var req models.PutPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pattern := req.Pattern
	var err error
	switch {
	case req.Grid != "" && (len(req.Pattern) > 0 || len(req.Notes) > 0),
		len(req.Pattern) > 0 && len(req.Notes) > 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern, grid and notes are mutually exclusive"})
		return
	case req.Grid != "":
		pattern, err = rhythm.ParseGrid(req.Grid, req.Step)
	case len(req.Notes) > 0:
		pattern, err = rhythm.FromNotes(req.Notes)
	}
	if err != nil {
		respondError(c, "Invalid pattern", err)
		return
	}

	named := patterns.NamedPattern{
		Name:        c.Param("name"),
		Description: req.Description,
		Pattern:     pattern,
	}
	if err := h.store.Put(c.Request.Context(), named); err != nil {
		respondError(c, "Failed to save pattern", err)
		return
	}

	fields := logger.WithContext(c)
	fields["pattern"] = named.Name
	fields["items"] = len(pattern)
	if user, ok := apimiddleware.GetUserIDFromGateway(c); ok {
		fields["user"] = user
	}
	logger.Info("Rhythm pattern saved", fields)

	c.JSON(http.StatusOK, gin.H{"pattern": named})
}
