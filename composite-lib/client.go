// ABOUTME: Main client for the product composite library
// ABOUTME: Runs the composite aggregation in-process without the HTTP server

package composite

import (
	"context"

	corecomposite "product-composite-api/core/composite"
	"product-composite-api/core/integration"
	"product-composite-api/core/interfaces"
	"product-composite-api/pkg/config"
	"product-composite-api/pkg/utils/netaddr"
)

// Client is the main entry point for the library
type Client struct {
	compositeService interfaces.CompositeService
	config           Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient calls the backends
	HTTPClient interfaces.HTTPClient

	// Logger receives the same messages the server logs
	Logger interfaces.Logger

	// Services locates the product, recommendation and review backends
	Services config.ServicesConfig

	// ServiceAddress is reported as the composite address.
	// Empty means the local host name and IP with port 0.
	ServiceAddress string
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.HTTPClient == nil {
		return nil, ErrNoHTTPClient
	}

	if cfg.Logger == nil {
		cfg.Logger = interfaces.NopLogger{}
	}

	if cfg.ServiceAddress == "" {
		cfg.ServiceAddress = netaddr.ServiceAddress("0")
	}

	deps := interfaces.Dependencies{
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
	}

	svc := integration.NewIntegration(deps, integration.Endpoints{
		ProductURL:        cfg.Services.ProductURL(),
		RecommendationURL: cfg.Services.RecommendationURL(),
		ReviewURL:         cfg.Services.ReviewURL(),
	})

	return &Client{
		compositeService: corecomposite.NewCompositeService(svc, svc, svc, cfg.Logger, cfg.ServiceAddress),
		config:           cfg,
	}, nil
}

// GetProductComposite fetches a product with its recommendations and reviews.
// Errors are *Error values; use IsNotFoundError and friends to classify them.
func (c *Client) GetProductComposite(ctx context.Context, productID int) (*ProductComposite, error) {
	aggregate, err := c.compositeService.GetProductComposite(ctx, productID)
	if err != nil {
		return nil, fromCoreError(err, productID)
	}

	return fromDomainAggregate(aggregate), nil
}
