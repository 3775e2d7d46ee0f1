package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumiere/config"
	cronWorker "lumiere/cron"
	"lumiere/database"
	appointmentRepoPkg "lumiere/database/repository/appointment"
	catalogRepoPkg "lumiere/database/repository/catalog"
	chatRepoPkg "lumiere/database/repository/chat"
	promotionRepoPkg "lumiere/database/repository/promotion"
	settingsRepoPkg "lumiere/database/repository/settings"
	userRepoPkg "lumiere/database/repository/user"
	"lumiere/handlers"
	"lumiere/middleware"
	"lumiere/routes"
	"lumiere/services/address"
	"lumiere/services/booking"
	"lumiere/services/catalog"
	"lumiere/services/chat"
	"lumiere/services/notification"
	"lumiere/services/promotion"
	"lumiere/services/settings"
	"lumiere/services/user"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoServiceRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	promotionRepo := promotionRepoPkg.NewMongoPromotionRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	notificationService := notification.NewDefaultNotificationService(userRepo, utils.FCMClient)
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	settingsService := &settings.DefaultSettingsService{
		Repo:  settingsRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     appointmentRepo,
		Catalog:  catalogRepo,
		Settings: settingsRepo,
		Notifier: notificationService,
	}
	chatService := &chat.DefaultChatService{
		Repo:         chatRepo,
		Appointments: appointmentRepo,
		Notifier:     notificationService,
	}
	promotionService := &promotion.DefaultPromotionService{
		Repo:     promotionRepo,
		Notifier: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth:      handlers.NewAuthHandler(userService),
		Users:     handlers.NewUserHandler(userService),
		Devices:   handlers.NewUserDeviceHandler(userService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Chat:      handlers.NewChatHandler(chatService),
		Promotion: handlers.NewPromotionHandler(promotionService),
		Admin:     handlers.NewAdminHandler(bookingService, userService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Storage:   handlers.NewStorageHandler(storageService),
		Address:   handlers.NewAddressHandler(address.NewHTTPLookup()),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	reminderWorker := cronWorker.NewReminderWorker(appointmentRepo, notificationService)
	if err := reminderWorker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder worker: %v", err)
	}

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

	reminderWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
