package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/logger"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/Conceptual-Machines/magda-chords/internal/services"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, patterns.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, patterns.ErrInvalidName),
		errors.Is(err, patterns.ErrReadOnly),
		errors.Is(err, rhythm.ErrEmptyPattern),
		errors.Is(err, rhythm.ErrMalformedPattern),
		errors.Is(err, chords.ErrNoRoot),
		errors.Is(err, chords.ErrInvalidDegree):
		return http.StatusBadRequest
	case errors.Is(err, chords.ErrInversionDiverged):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, err, logger.WithContext(c))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
