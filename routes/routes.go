package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(
	r *gin.Engine,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterDoctorRoutes(r, doctorHandler)
	RegisterPatientRoutes(r, patientHandler)
	RegisterAppointmentRoutes(r, appointmentHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm medibook"})
	})
}

// RegisterDoctorRoutes registers doctor profile and slot listing endpoints.
func RegisterDoctorRoutes(r *gin.Engine, h *handlers.DoctorHandler) {
	api := r.Group("/api/doctors")
	{
		// Slot listing is public so patients can browse before signing in.
		api.GET("/:id/slots", h.GetDoctorSlotsHandler)
		api.GET("", h.ListDoctorsHandler)
		api.GET("/:id", h.GetDoctorByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", middleware.RequireRoles("admin"), h.RegisterDoctorHandler)
		protected.PUT("/:id/availability", middleware.RequireRoles("doctor", "admin"), h.UpdateAvailabilityHandler)
		protected.PUT("/:id/fcm-token", middleware.RequireRoles("doctor"), h.UpdateDoctorFCMTokenHandler)
	}
}

// RegisterPatientRoutes registers patient endpoints.
func RegisterPatientRoutes(r *gin.Engine, h *handlers.PatientHandler) {
	api := r.Group("/api/patients")
	{
		api.POST("", h.RegisterPatientHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/:id", middleware.RequireRoles("patient", "admin"), h.GetPatientByIDHandler)
		protected.PUT("/:id/fcm-token", middleware.RequireRoles("patient"), h.UpdatePatientFCMTokenHandler)
	}
}

// RegisterAppointmentRoutes registers the booking flow endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRoles("patient", "admin"), h.CreateAppointmentHandler)
		api.GET("", h.ListAppointmentsHandler)
		api.GET("/:id", h.GetAppointmentHandler)
		api.PATCH("/:id/status", middleware.RequireRoles("doctor", "admin"), h.UpdateStatusHandler)
	}
}
