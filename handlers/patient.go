package handlers

import (
	"net/http"

	patientRepo "medibook/database/repository/patient"
	"medibook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler exposes patient registration and device token management.
type PatientHandler struct {
	Repo patientRepo.PatientRepository
}

func NewPatientHandler(repo patientRepo.PatientRepository) *PatientHandler {
	return &PatientHandler{Repo: repo}
}

// RegisterPatientHandler creates a patient record.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	patient := models.Patient{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := h.Repo.Create(c.Request.Context(), &patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register patient"})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatientByIDHandler returns a single patient record.
func (h *PatientHandler) GetPatientByIDHandler(c *gin.Context) {
	patient, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatientFCMTokenHandler stores the patient's push token.
func (h *PatientHandler) UpdatePatientFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Repo.UpdateFCMToken(c.Request.Context(), c.Param("id"), input.Token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
