// File: servicehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicehub/config"
	"servicehub/database"
	"servicehub/database/repository"
	"servicehub/database/repository/memory"
	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/routes"
	"servicehub/services/booking"
	"servicehub/services/notification"
	"servicehub/services/registry"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.InitRedis()

	// repositories.
	var (
		serviceRepo repository.ServiceRepository
		bookingRepo repository.BookingRepository
		mongoPinger utils.Pinger
	)
	switch config.AppConfig.StoreDriver {
	case "memory":
		logger.Warn("main: using the in-memory store, data is lost on restart")
		serviceRepo = memory.NewServiceRepository()
		bookingRepo = memory.NewBookingRepository()
		mongoPinger = utils.PingFunc(func(context.Context) error { return nil })
	default:
		database.InitDB()
		db := database.Database()
		serviceRepo = repository.NewMongoServiceRepo(db, config.AppConfig.StoreTimeout)
		bookingRepo = repository.NewMongoBookingRepo(db, config.AppConfig.StoreTimeout)
		mongoPinger = utils.PingFunc(func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) })
	}

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := serviceRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("main: service indexes not created", zap.Error(err))
	}
	if err := bookingRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("main: booking indexes not created", zap.Error(err))
	}
	cancelIndexes()

	// rating events.
	var notifier notification.RatingNotifier = notification.NopNotifier{}
	var redisPinger utils.Pinger
	if client := utils.GetEventsClient(); client != nil {
		notifier = notification.NewRedisRatingNotifier(client, config.AppConfig.RatingEventsChannel)
		redisPinger = utils.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
	}

	// services.
	registryService := registry.NewRegistryService(serviceRepo, notifier, logger)
	bookingService := booking.NewBookingService(bookingRepo, serviceRepo, notifier, logger)

	// health.
	monitor := utils.NewHealthMonitor(mongoPinger, redisPinger)
	if err := monitor.Start("@every 60s"); err != nil {
		logger.Fatal("main: failed to start health monitor", zap.Error(err))
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewServiceHandler(registryService, logger),
		handlers.NewBookingHandler(bookingService, logger),
		handlers.NewHealthHandler(monitor),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.StaticDir)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	monitor.Stop()
	if err := utils.CloseRedis(); err != nil {
		logger.Warn("main: redis close failed", zap.Error(err))
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
