// ABOUTME: Composite service aggregating product, recommendation and review data
// ABOUTME: Calls the three backends one after the other and assembles the product aggregate

package composite

import (
	"context"

	"product-composite-api/core/domain"
	"product-composite-api/core/interfaces"
)

// CompositeService builds product aggregates
type CompositeService struct {
	products        interfaces.ProductService
	recommendations interfaces.RecommendationService
	reviews         interfaces.ReviewService
	logger          interfaces.Logger

	// serviceAddress is this instance's own address, resolved once at startup
	serviceAddress string
}

// NewCompositeService creates a new composite service instance
func NewCompositeService(
	products interfaces.ProductService,
	recommendations interfaces.RecommendationService,
	reviews interfaces.ReviewService,
	logger interfaces.Logger,
	serviceAddress string,
) *CompositeService {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &CompositeService{
		products:        products,
		recommendations: recommendations,
		reviews:         reviews,
		logger:          logger,
		serviceAddress:  serviceAddress,
	}
}

// GetProductComposite returns the product with its recommendations and reviews.
// A product failure is returned as is and no other backend is called.
func (s *CompositeService) GetProductComposite(ctx context.Context, productID int) (*domain.ProductAggregate, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	recommendations, err := s.recommendations.GetRecommendations(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetReviews(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.warnOnMismatch(productID, recommendations, reviews)

	return &domain.ProductAggregate{
		Product:          *product,
		Recommendations:  recommendations,
		Reviews:          reviews,
		ServiceAddresses: domain.NewServiceAddresses(s.serviceAddress, *product, recommendations, reviews),
	}, nil
}

// warnOnMismatch reports records that belong to another product.
// They are kept in the aggregate; the backends own that contract.
func (s *CompositeService) warnOnMismatch(productID int, recommendations []domain.Recommendation, reviews []domain.Review) {
	mismatched := 0
	for _, r := range recommendations {
		if r.ProductID != productID {
			mismatched++
		}
	}
	for _, r := range reviews {
		if r.ProductID != productID {
			mismatched++
		}
	}

	if mismatched > 0 {
		s.logger.Warn("Backend returned records for another product", map[string]interface{}{
			"product_id": productID,
			"mismatched": mismatched,
		})
	}
}
