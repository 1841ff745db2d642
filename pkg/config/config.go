// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, backend services, rate limiting and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Services locates the product, recommendation and review backends
	Services ServicesConfig

	// RateLimit contains rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ClientTimeout bounds every call to a backend service
	ClientTimeout time.Duration
}

// ServiceEndpoint is the host and port of one backend
type ServiceEndpoint struct {
	Host string
	Port string
}

// ServicesConfig holds the location of every backend
type ServicesConfig struct {
	Product        ServiceEndpoint
	Recommendation ServiceEndpoint
	Review         ServiceEndpoint
}

// ProductURL returns the product base URL, the product id is appended to it
func (s ServicesConfig) ProductURL() string {
	return fmt.Sprintf("http://%s:%s/product/", s.Product.Host, s.Product.Port)
}

// RecommendationURL returns the recommendation base URL, the product id is appended to it
func (s ServicesConfig) RecommendationURL() string {
	return fmt.Sprintf("http://%s:%s/recommendation?productId=", s.Recommendation.Host, s.Recommendation.Port)
}

// ReviewURL returns the review base URL, the product id is appended to it
func (s ServicesConfig) ReviewURL() string {
	return fmt.Sprintf("http://%s:%s/review?productId=", s.Review.Host, s.Review.Port)
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests per window. 0, the default, disables rate limiting
	Limit int

	// Window is the rate limit window
	Window time.Duration

	// Store is the limiter backend (memory/redis)
	Store string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnvOrDefault("PORT", "7000"),
			ClientTimeout: time.Duration(getEnvAsIntOrDefault("HTTP_CLIENT_TIMEOUT", 30)) * time.Second,
		},
		Services: ServicesConfig{
			Product: ServiceEndpoint{
				Host: getEnvOrDefault("PRODUCT_SERVICE_HOST", "localhost"),
				Port: getEnvOrDefault("PRODUCT_SERVICE_PORT", "7001"),
			},
			Recommendation: ServiceEndpoint{
				Host: getEnvOrDefault("RECOMMENDATION_SERVICE_HOST", "localhost"),
				Port: getEnvOrDefault("RECOMMENDATION_SERVICE_PORT", "7002"),
			},
			Review: ServiceEndpoint{
				Host: getEnvOrDefault("REVIEW_SERVICE_HOST", "localhost"),
				Port: getEnvOrDefault("REVIEW_SERVICE_PORT", "7003"),
			},
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 0),
			Window: time.Duration(getEnvAsIntOrDefault("RATE_WINDOW", 60)) * time.Second,
			Store:  getEnvOrDefault("RATE_LIMIT_STORE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.ClientTimeout <= 0 {
		return errors.New("http client timeout must be at least 1 second")
	}

	endpoints := map[string]ServiceEndpoint{
		"product":        c.Services.Product,
		"recommendation": c.Services.Recommendation,
		"review":         c.Services.Review,
	}
	for _, name := range []string{"product", "recommendation", "review"} {
		if endpoints[name].Host == "" || endpoints[name].Port == "" {
			return fmt.Errorf("%s service host and port cannot be empty", name)
		}
	}

	if c.RateLimit.Limit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Limit > 0 && c.RateLimit.Window < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	if c.RateLimit.Store != "redis" && c.RateLimit.Store != "memory" {
		return errors.New("rate limit store must be 'redis' or 'memory'")
	}

	if c.RateLimit.Store == "redis" && c.RateLimit.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis rate limit store")
	}

	return nil
}
