package handlers

import (
	"fmt"
	"net/http"
	"time"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// DoctorHandler exposes doctor profile management and the advisory slot
// listing endpoint.
type DoctorHandler struct {
	Service doctor.DoctorService
	Booking scheduling.BookingService
}

func NewDoctorHandler(svc doctor.DoctorService, booking scheduling.BookingService) *DoctorHandler {
	return &DoctorHandler{Service: svc, Booking: booking}
}

type availabilityInput struct {
	WorkDays            []string `json:"workDays" binding:"required"`
	DayStart            string   `json:"dayStart" binding:"required"` // "09:00"
	DayEnd              string   `json:"dayEnd" binding:"required"`   // "17:00"
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
}

func (in availabilityInput) toTemplate() (models.AvailabilityTemplate, error) {
	start, err := models.ParseClock(in.DayStart)
	if err != nil {
		return models.AvailabilityTemplate{}, fmt.Errorf("dayStart: %w", err)
	}
	end, err := models.ParseClock(in.DayEnd)
	if err != nil {
		return models.AvailabilityTemplate{}, fmt.Errorf("dayEnd: %w", err)
	}
	duration := in.SlotDurationMinutes
	if duration == 0 {
		duration = 30
	}
	return models.AvailabilityTemplate{
		WorkDays:            in.WorkDays,
		DayStart:            start,
		DayEnd:              end,
		SlotDurationMinutes: duration,
	}, nil
}

// RegisterDoctorHandler creates a doctor profile with its availability template.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	var input struct {
		Name         string            `json:"name" binding:"required"`
		Email        string            `json:"email" binding:"required,email"`
		PhoneNumber  string            `json:"phoneNumber"`
		Specialty    string            `json:"specialty"`
		Availability availabilityInput `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	template, err := input.Availability.toTemplate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), models.Doctor{
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Specialty:    input.Specialty,
		Availability: template,
	})
	if err != nil {
		if respondSchedulingError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register doctor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetDoctorByIDHandler returns a single doctor profile.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	d, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListDoctorsHandler returns all active doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// UpdateAvailabilityHandler replaces a doctor's availability template.
// Template invariants are checked here, at edit time.
func (h *DoctorHandler) UpdateAvailabilityHandler(c *gin.Context) {
	var input availabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	template, err := input.toTemplate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateAvailability(c.Request.Context(), c.Param("id"), template)
	if err != nil {
		if respondSchedulingError(c, err) {
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateDoctorFCMTokenHandler stores the doctor's push token.
func (h *DoctorHandler) UpdateDoctorFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateFCMToken(c.Request.Context(), c.Param("id"), input.Token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetDoctorSlotsHandler lists the free slots for a doctor on one date. The
// list is advisory; the booking endpoint re-checks before persisting.
func (h *DoctorHandler) GetDoctorSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be provided as YYYY-MM-DD"})
		return
	}

	slots, err := h.Booking.AvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		if respondSchedulingError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute slots"})
		return
	}

	views := make([]models.AvailableSlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, models.AvailableSlotView{
			Start:           s.Start,
			StartTime:       models.FormatClock(s.Start),
			DurationMinutes: s.DurationMinutes,
			Date:            date,
		})
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": views})
}
