// ABOUTME: Configuration options for the product composite library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package composite

import (
	"time"

	"product-composite-api/core/interfaces"
	"product-composite-api/infrastructure/http/standard"
	"product-composite-api/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithTimeout replaces the HTTP client with a standard one using timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.HTTPClient = standard.NewStandardHTTPClient(timeout)
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return WithLogger(interfaces.NopLogger{})
}

// WithServices points the client at the given backend hosts
func WithServices(services config.ServicesConfig) Option {
	return func(c *Config) error {
		c.Services = services
		return nil
	}
}

// WithServiceAddress sets the address reported as "cmp" in every composite
func WithServiceAddress(address string) Option {
	return func(c *Config) error {
		c.ServiceAddress = address
		return nil
	}
}
