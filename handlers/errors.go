package handlers

import (
	"errors"
	"net/http"

	"medibook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError translates a typed scheduling error into the matching
// HTTP response. Returns false when the error is not a scheduling error and
// the caller should fall back to a 500.
func respondSchedulingError(c *gin.Context, err error) bool {
	var serr *scheduling.SchedulingError
	if !errors.As(err, &serr) {
		return false
	}

	status := http.StatusUnprocessableEntity
	switch serr {
	case scheduling.ErrDoctorNotFound, scheduling.ErrAppointmentNotFound:
		status = http.StatusNotFound
	case scheduling.ErrSlotUnavailable:
		status = http.StatusConflict
	case scheduling.ErrInvalidDuration, scheduling.ErrInvalidTemplate, scheduling.ErrInvalidTransition:
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": serr.Message, "code": serr.Code})
	return true
}
