// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the backend contracts consumed by the aggregator and the composite contract it exposes

package interfaces

import (
	"context"

	"product-composite-api/core/domain"
)

// ProductService fetches a single product from the product backend
type ProductService interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
}

// RecommendationService fetches the recommendations of a product
type RecommendationService interface {
	GetRecommendations(ctx context.Context, productID int) ([]domain.Recommendation, error)
}

// ReviewService fetches the reviews of a product
type ReviewService interface {
	GetReviews(ctx context.Context, productID int) ([]domain.Review, error)
}

// CompositeService assembles everything known about one product
type CompositeService interface {
	GetProductComposite(ctx context.Context, productID int) (*domain.ProductAggregate, error)
}
