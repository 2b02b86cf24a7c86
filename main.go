package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"silesiagrand/config"
	"silesiagrand/handlers"
	"silesiagrand/middleware"
	"silesiagrand/routes"
	"silesiagrand/services/booking"
	"silesiagrand/services/catalog"
	"silesiagrand/services/concierge"
	ai "silesiagrand/services/intelligence"
	"silesiagrand/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Completion gateway.
	provider, err := ai.NewProviderFromConfig(rootCtx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize %s provider: %v", cfg.LLMProvider, err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	gateway := ai.NewGateway(provider, logger, ai.WithTimeout(cfg.CompletionTimeout()))

	// Transcript store: Redis when reachable, memory otherwise.
	var store concierge.TranscriptStore = concierge.NopTranscriptStore{}
	var redisClients []*redis.Client
	if client := utils.GetSessionCacheClient(); client != nil {
		store = concierge.NewRedisTranscriptStore(client, cfg.SessionTTL())
		redisClients = append(redisClients, client)
		defer client.Close()
	}
	utils.StartHealthMonitor(rootCtx, redisClients, 30*time.Second)

	registry := concierge.NewRegistry(gateway, store, logger, concierge.RegistryConfig{
		HistoryWindow: cfg.HistoryWindow,
		IdleTTL:       cfg.SessionTTL(),
	})
	registry.StartJanitor(rootCtx, 5*time.Minute)

	hotel := catalog.New()
	bookingService := booking.NewDefaultBookingService(hotel, logger)

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewConciergeHandler(registry),
		handlers.NewBookingHandler(bookingService, registry),
		handlers.NewCatalogHandler(hotel),
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s with %s provider...", srv.Addr, provider.Name())
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
