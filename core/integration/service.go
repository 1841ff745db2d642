// ABOUTME: Integration service calling the product, recommendation and review backends
// ABOUTME: Maps backend responses to domain models and applies a per-call error policy

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"product-composite-api/core/domain"
	coreerrors "product-composite-api/core/errors"
	"product-composite-api/core/interfaces"
)

var errEmptyProduct = errors.New("product body is null")

// Endpoints holds the base URLs of the three backends.
// The product id is appended to each of them as is.
type Endpoints struct {
	// ProductURL looks like http://host:port/product/
	ProductURL string

	// RecommendationURL looks like http://host:port/recommendation?productId=
	RecommendationURL string

	// ReviewURL looks like http://host:port/review?productId=
	ReviewURL string
}

// Integration talks to the backends on behalf of the aggregator.
// It implements ProductService, RecommendationService and ReviewService.
type Integration struct {
	deps      interfaces.Dependencies
	endpoints Endpoints
}

// NewIntegration creates a new integration service instance
func NewIntegration(deps interfaces.Dependencies, endpoints Endpoints) *Integration {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}

	return &Integration{
		deps:      deps,
		endpoints: endpoints,
	}
}

// GetProduct fetches a product. NotFound and InvalidInput responses are
// translated into domain errors, every other failure is returned unchanged.
func (i *Integration) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	url := i.endpoints.ProductURL + strconv.Itoa(productID)

	payload, err := fetch[*productPayload](ctx, i, "product", url, Propagate)
	if err != nil {
		return nil, err
	}

	// A JSON null decodes without error but is not a product
	if payload == nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, errEmptyProduct)
	}

	product := payload.toDomain()
	i.deps.Logger.Debug("Found a product", map[string]interface{}{
		"product_id": product.ProductID,
	})

	return &product, nil
}

// GetRecommendations fetches the recommendations of a product.
// Any failure results in an empty sequence.
func (i *Integration) GetRecommendations(ctx context.Context, productID int) ([]domain.Recommendation, error) {
	url := i.endpoints.RecommendationURL + strconv.Itoa(productID)

	payloads, err := fetch[[]recommendationPayload](ctx, i, "recommendation", url, Suppress)
	if err != nil {
		return nil, err
	}

	recommendations := make([]domain.Recommendation, 0, len(payloads))
	for _, p := range payloads {
		recommendations = append(recommendations, p.toDomain())
	}

	i.deps.Logger.Debug("Found recommendations", map[string]interface{}{
		"product_id": productID,
		"count":      len(recommendations),
	})

	return recommendations, nil
}

// GetReviews fetches the reviews of a product.
// Any failure results in an empty sequence.
func (i *Integration) GetReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	url := i.endpoints.ReviewURL + strconv.Itoa(productID)

	payloads, err := fetch[[]reviewPayload](ctx, i, "review", url, Suppress)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(payloads))
	for _, p := range payloads {
		reviews = append(reviews, p.toDomain())
	}

	i.deps.Logger.Debug("Found reviews", map[string]interface{}{
		"product_id": productID,
		"count":      len(reviews),
	})

	return reviews, nil
}

// fetch calls a backend, decodes its JSON response into T and applies policy to any failure
func fetch[T any](ctx context.Context, i *Integration, backend, url string, policy ErrorPolicy) (T, error) {
	var out T

	i.deps.Logger.Debug("Calling backend", map[string]interface{}{
		"backend": backend,
		"url":     url,
	})

	err := i.getJSON(ctx, url, &out)
	if err == nil {
		return out, nil
	}

	if policy == Suppress {
		i.deps.Logger.Warn("Backend call failed, returning empty result", map[string]interface{}{
			"backend": backend,
			"url":     url,
			"policy":  policy.String(),
			"error":   err.Error(),
		})
		var zero T
		return zero, nil
	}

	var statusErr *coreerrors.HTTPStatusError
	if errors.As(err, &statusErr) {
		i.deps.Logger.Warn("Got an unexpected HTTP error, will rethrow it", map[string]interface{}{
			"backend": backend,
			"status":  statusErr.StatusCode,
			"body":    statusErr.Body,
		})
	}

	var zero T
	return zero, err
}

// getJSON performs a GET and decodes a 2xx body into out.
// Non-2xx responses are translated by the error translator.
func (i *Integration) getJSON(ctx context.Context, url string, out interface{}) error {
	if i.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}

	resp, err := i.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return err
	}

	body := resp.Body()
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return coreerrors.FromHTTPStatus(resp.StatusCode(), url, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}
