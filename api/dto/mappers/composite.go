// ABOUTME: Mappers for converting the composite domain model to API DTOs
// ABOUTME: Keeps JSON naming out of the core packages

package mappers

import (
	"product-composite-api/api/dto/responses"
	"product-composite-api/core/domain"
)

// ToProductAggregateResponse converts a domain ProductAggregate to its response DTO
func ToProductAggregateResponse(aggregate *domain.ProductAggregate) *responses.ProductAggregateResponse {
	if aggregate == nil {
		return nil
	}

	return &responses.ProductAggregateResponse{
		ProductID:        aggregate.Product.ProductID,
		Name:             aggregate.Product.Name,
		Weight:           aggregate.Product.Weight,
		Recommendations:  ToRecommendationSummaries(aggregate.Recommendations),
		Reviews:          ToReviewSummaries(aggregate.Reviews),
		ServiceAddresses: ToServiceAddressesResponse(aggregate.ServiceAddresses),
	}
}

// ToRecommendationSummaries never returns nil so the field encodes as []
func ToRecommendationSummaries(recommendations []domain.Recommendation) []responses.RecommendationSummary {
	summaries := make([]responses.RecommendationSummary, 0, len(recommendations))

	for _, r := range recommendations {
		summaries = append(summaries, responses.RecommendationSummary{
			RecommendationID: r.RecommendationID,
			Author:           r.Author,
			Rate:             r.Rate,
			Content:          r.Content,
		})
	}

	return summaries
}

// ToReviewSummaries never returns nil so the field encodes as []
func ToReviewSummaries(reviews []domain.Review) []responses.ReviewSummary {
	summaries := make([]responses.ReviewSummary, 0, len(reviews))

	for _, r := range reviews {
		summaries = append(summaries, responses.ReviewSummary{
			ReviewID: r.ReviewID,
			Author:   r.Author,
			Subject:  r.Subject,
			Content:  r.Content,
		})
	}

	return summaries
}

func ToServiceAddressesResponse(addresses domain.ServiceAddresses) responses.ServiceAddressesResponse {
	return responses.ServiceAddressesResponse{
		Composite:      addresses.Composite,
		Product:        addresses.Product,
		Review:         addresses.Review,
		Recommendation: addresses.Recommendation,
	}
}
