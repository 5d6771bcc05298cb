package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawflow/config"
	"lawflow/database"
	availabilityRepo "lawflow/database/repository/availability"
	bookingRepo "lawflow/database/repository/booking"
	"lawflow/handlers"
	"lawflow/middleware"
	"lawflow/routes"
	"lawflow/services/availability"
	"lawflow/services/notification"
	"lawflow/services/scheduling"
	"lawflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	profileRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	engine := &scheduling.DefaultSchedulingEngine{
		Profiles: profileRepo,
		Bookings: bookings,
		Notifier: notification.LogNotifier{},
	}
	profileService := &availability.DefaultProfileService{
		Repo:     profileRepo,
		Bookings: bookings,
	}

	// handlers.
	cache := utils.GetCacheClient()
	availabilityHandler := handlers.NewAvailabilityHandler(profileService, cache)
	bookingHandler := handlers.NewBookingHandler(engine, cache)
	slotHandler := handlers.NewSlotHandler(engine, profileService, cache)

	routes.RegisterRoutes(router, availabilityHandler, bookingHandler, slotHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("lawflow scheduling service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}
