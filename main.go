package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	mbcron "medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepoPkg "medibook/database/repository/doctor"
	patientRepoPkg "medibook/database/repository/patient"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/doctor"
	"medibook/services/notification"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	for _, ensure := range []func() error{
		doctorRepo.EnsureIndexes,
		patientRepo.EnsureIndexes,
		apptRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to create indexes: %v", err)
		}
	}

	// services.
	notificationService, err := notification.NewDefaultNotificationService(patientRepo, doctorRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}

	bookingService := &scheduling.DefaultBookingService{
		DoctorRepo:      doctorRepo,
		AppointmentRepo: apptRepo,
		Notifier:        notificationService,
		Reminders:       mbcron.NewReminderScheduler(),
	}

	// background workers.
	mbcron.InitReminderWorker(notificationService)
	sweeper := mbcron.StartNoShowSweeper(apptRepo)
	defer sweeper.Stop()

	// handlers and routes.
	doctorHandler := handlers.NewDoctorHandler(doctorService, bookingService)
	patientHandler := handlers.NewPatientHandler(patientRepo)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, apptRepo)

	routes.RegisterRoutes(router, doctorHandler, patientHandler, appointmentHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
