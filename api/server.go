// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the logging and rate limit middleware chain

package api

import (
	"product-composite-api/api/middleware"
	"product-composite-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Limiter enforces per-client request rates. Nil disables rate limiting.
	Limiter middleware.Limiter
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// CORS must run before anything that can reject a request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Window", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	return router
}

func newHumaAPI(router chi.Router) huma.API {
	config := huma.DefaultConfig("Product Composite API", "1.0.0")
	config.Info.Description = "Aggregates a product with its recommendations and reviews"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	return humachi.New(router, config)
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()
	return newHumaAPI(router), router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Limiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.Limiter))
	}

	return newHumaAPI(router), router
}
