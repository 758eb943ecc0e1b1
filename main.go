// File: gencare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gencare/config"
	"gencare/cron"
	"gencare/database"
	appointmentRepoPkg "gencare/database/repository/appointment"
	consultantRepoPkg "gencare/database/repository/consultant"
	"gencare/handlers"
	"gencare/middleware"
	"gencare/routes"
	"gencare/services/booking"
	"gencare/services/notification"
	"gencare/services/scheduling"
	"gencare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	consultantRepo := consultantRepoPkg.NewMongoConsultantRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultBookingSessionService{
		ConsultantRepo:  consultantRepo,
		AppointmentRepo: appointmentRepo,
		Engine:          scheduling.NewEngine(),
		NotificationSvc: notificationService,
		ReminderClient:  reminderClient,
		WindowDays:      config.AppConfig.BookingWindowDays,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Consultant: handlers.NewConsultantHandler(consultantRepo, utils.GetCacheClient(), logger),
		Dashboard:  handlers.NewDashboardHandler(appointmentRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
