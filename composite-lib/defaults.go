// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package composite

import (
	"os"
	"time"

	"product-composite-api/core/interfaces"
	httpInfra "product-composite-api/infrastructure/http/standard"
	loggerInfra "product-composite-api/infrastructure/logger/logrus"
	"product-composite-api/pkg/config"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every backend call of the default HTTP client
const DefaultTimeout = 30 * time.Second

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout)
}

// DefaultLogger creates a default logger that writes warnings and errors to stderr
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogrusLoggerWithWriter(os.Stderr, logrus.WarnLevel, "text")
}

// DefaultServices returns the backends on localhost with their standard ports
func DefaultServices() config.ServicesConfig {
	return config.ServicesConfig{
		Product:        config.ServiceEndpoint{Host: "localhost", Port: "7001"},
		Recommendation: config.ServiceEndpoint{Host: "localhost", Port: "7002"},
		Review:         config.ServiceEndpoint{Host: "localhost", Port: "7003"},
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient: DefaultHTTPClient(),
		Logger:     DefaultLogger(),
		Services:   DefaultServices(),
	}
}
