package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onboardify/config"
	"onboardify/cron"
	"onboardify/database"
	merchantRepo "onboardify/database/repository/merchant"
	trainerRepo "onboardify/database/repository/trainer"
	"onboardify/handlers"
	"onboardify/middleware"
	"onboardify/routes"
	"onboardify/services/booking"
	"onboardify/services/calendar"
	"onboardify/services/crm"
	"onboardify/services/notification"
	"onboardify/services/tasks"
	"onboardify/utils"

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
	trainers := trainerRepo.NewMongoTrainerRepo()
	merchants := merchantRepo.NewMongoMerchantRepo()

	// services.
	googleCalendar := calendar.NewGoogleClient(
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
		config.AppConfig.GoogleRedirectURL,
	)
	availabilityProvider := calendar.NewAvailabilityProvider(googleCalendar, logger)

	crmClient := crm.NewHTTPClient(config.AppConfig.CRMBaseURL, config.AppConfig.CRMAPIToken, logger)
	fieldMapper, err := crm.NewFieldMapper()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid CRM field mapping: %v", err)
	}

	notificationService, err := notification.NewFCMService(merchants)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	taskQueue := tasks.NewAsynqQueue()

	aggregator := &booking.Aggregator{
		Availability: availabilityProvider,
		TrainerRepo:  trainers,
		Cache:        booking.NewRedisCache(utils.GetCacheClient()),
		Logger:       logger,
	}

	bookingService := &booking.DefaultBookingService{
		Aggregator:   aggregator,
		TrainerRepo:  trainers,
		MerchantRepo: merchants,
		Calendar:     googleCalendar,
		CRM:          crmClient,
		FieldMap:     fieldMapper,
		Notifier:     notificationService,
		Tasks:        taskQueue,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, aggregator, logger),
		Trainer:  handlers.NewTrainerHandler(trainers, availabilityProvider, googleCalendar, logger),
		Merchant: handlers.NewMerchantHandler(merchants, crmClient, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for CRM re-sync and appointment reminders.
	cron.InitTaskWorker(crmClient, notificationService)

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
