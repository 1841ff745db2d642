// ABOUTME: Main entry point for the Product Composite API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-composite-api/api"
	"product-composite-api/api/handlers"
	"product-composite-api/api/middleware"
	"product-composite-api/core/composite"
	"product-composite-api/core/integration"
	"product-composite-api/core/interfaces"
	stdhttp "product-composite-api/infrastructure/http/standard"
	logruslogger "product-composite-api/infrastructure/logger/logrus"
	"product-composite-api/infrastructure/ratelimit/memory"
	"product-composite-api/infrastructure/ratelimit/redis"
	"product-composite-api/pkg/config"
	"product-composite-api/pkg/utils/netaddr"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := logruslogger.NewLogrusLogger(logruslogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Resolved once, every composite response reports the same address
	serviceAddress := netaddr.ServiceAddress(cfg.Server.Port)

	logger.Info("Starting Product Composite API", map[string]interface{}{
		"port":               cfg.Server.Port,
		"service_address":    serviceAddress,
		"product_url":        cfg.Services.ProductURL(),
		"recommendation_url": cfg.Services.RecommendationURL(),
		"review_url":         cfg.Services.ReviewURL(),
	})

	// Create HTTP client; backend calls carry the incoming request ID
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Server.ClientTimeout, stdhttp.WithTransport(&middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}))

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	integrationService := integration.NewIntegration(deps, integration.Endpoints{
		ProductURL:        cfg.Services.ProductURL(),
		RecommendationURL: cfg.Services.RecommendationURL(),
		ReviewURL:         cfg.Services.ReviewURL(),
	})
	compositeService := composite.NewCompositeService(
		integrationService,
		integrationService,
		integrationService,
		logger,
		serviceAddress,
	)

	// Create rate limiter
	var limiter middleware.Limiter
	if cfg.RateLimit.Limit > 0 {
		limiter = newLimiter(cfg.RateLimit, logger)
	}

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  logger,
		Limiter: limiter,
	})

	// Create and register handlers
	compositeHandler := handlers.NewCompositeHandler(compositeService, logger)
	compositeHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Three sequential backend calls must fit in one response
		WriteTimeout: 3*cfg.Server.ClientTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	closeLimiter(limiter, logger)

	logger.Info("Server stopped", nil)
}

// closeLimiter releases limiters holding connections, such as the Redis one
func closeLimiter(limiter middleware.Limiter, logger interfaces.Logger) {
	closer, ok := limiter.(io.Closer)
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		logger.Error("Failed to close rate limiter", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// newLimiter picks the limiter backend, falling back to memory when Redis is unreachable
func newLimiter(cfg config.RateLimitConfig, logger interfaces.Logger) middleware.Limiter {
	if cfg.Store == "redis" {
		redisLimiter, err := redis.NewLimiter(cfg.Redis, cfg.Limit, cfg.Window, logger)
		if err == nil {
			logger.Info("Using Redis rate limiter", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisLimiter
		}

		logger.Error("Failed to create Redis rate limiter, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory rate limiter", map[string]interface{}{
		"limit":  cfg.Limit,
		"window": cfg.Window.String(),
	})
	return memory.NewLimiter(cfg.Limit, cfg.Window)
}
