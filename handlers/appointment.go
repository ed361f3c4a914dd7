package handlers

import (
	"net/http"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the booking flow and appointment lifecycle
// endpoints.
type AppointmentHandler struct {
	Booking scheduling.BookingService
	Repo    appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(booking scheduling.BookingService, repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Booking: booking, Repo: repo}
}

// scheduledAtLayouts are the accepted shapes of the scheduledAt field.
var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseScheduledAt(value string) (time.Time, bool) {
	for _, layout := range scheduledAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateAppointmentHandler books an appointment. A 409 means the interval was
// taken between the advisory slot listing and this request; the client should
// re-fetch slots and pick another time.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		DoctorID        string `json:"doctorId" binding:"required"`
		PatientID       string `json:"patientId"`
		ScheduledAt     string `json:"scheduledAt" binding:"required"`
		DurationMinutes int    `json:"durationMinutes"`
		Type            string `json:"type" binding:"required"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	scheduledAt, ok := parseScheduledAt(input.ScheduledAt)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduledAt must be an ISO-8601 date-time"})
		return
	}

	// Patients book for themselves; staff may book on a patient's behalf.
	patientID := input.PatientID
	if c.GetString("role") == "patient" || patientID == "" {
		patientID = c.GetString("subjectID")
	}
	if patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientId is required"})
		return
	}

	appt, err := h.Booking.ProposeBooking(c.Request.Context(), models.BookingRequest{
		DoctorID:        input.DoctorID,
		PatientID:       patientID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: input.DurationMinutes,
		Type:            input.Type,
		Notes:           input.Notes,
	})
	if err != nil {
		if respondSchedulingError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler returns a single appointment.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler lists appointments scoped by the caller's role:
// doctors and patients see their own, admins pick a side via query params.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	role := c.GetString("role")
	subject := c.GetString("subjectID")

	var (
		appts []models.Appointment
		err   error
	)
	switch role {
	case "doctor":
		appts, err = h.Repo.ListByDoctor(ctx, subject)
	case "patient":
		appts, err = h.Repo.ListByPatient(ctx, subject)
	case "admin":
		if doctorID := c.Query("doctorId"); doctorID != "" {
			appts, err = h.Repo.ListByDoctor(ctx, doctorID)
		} else if patientID := c.Query("patientId"); patientID != "" {
			appts, err = h.Repo.ListByPatient(ctx, patientID)
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId or patientId query parameter required"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateStatusHandler applies a lifecycle transition to an appointment.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Booking.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if respondSchedulingError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}
