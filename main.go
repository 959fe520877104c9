package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"shalfa/config"
	"shalfa/handlers"
	"shalfa/i18n"
	"shalfa/middleware"
	"shalfa/routes"
	"shalfa/services/booking"
	"shalfa/services/concierge"
	"shalfa/services/prefs"
	"shalfa/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitPrefsCache()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionClient(),
		utils.GetPrefsClient(),
	})

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bundle := i18n.NewBundle()

	// services.
	bookingService := &booking.DefaultSessionService{
		Store: booking.NewRedisDraftStore(
			utils.GetSessionClient(),
			time.Duration(config.AppConfig.BookingSessionTTL)*time.Minute,
		),
		Validator:  booking.NewValidator(bundle, logger),
		EngineBase: config.AppConfig.BookingEngineURL,
	}

	var completer concierge.Completer
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		c, err := concierge.NewGeminiCompleter(context.Background(), key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini completer: %v", err)
		}
		completer = c
	} else {
		logger.Warn("GEMINI_API_KEY not set, concierge runs in degraded mode")
	}

	conciergeService := &concierge.DefaultService{
		Store: concierge.NewRedisTranscriptStore(
			utils.GetSessionClient(),
			time.Duration(config.AppConfig.ChatSessionTTL)*time.Minute,
		),
		Completer: completer,
	}

	prefsService := &prefs.DefaultService{
		Store: prefs.NewRedisStore(utils.GetPrefsClient()),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Bundle:    bundle,
		Booking:   bookingService,
		Concierge: conciergeService,
		Prefs:     prefsService,
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
