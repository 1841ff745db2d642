// ABOUTME: Wire shapes of the product, recommendation and review backends
// ABOUTME: Converts backend JSON payloads into domain models

package integration

import "product-composite-api/core/domain"

type productPayload struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	Weight         int    `json:"weight"`
	ServiceAddress string `json:"serviceAddress"`
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Weight:         p.Weight,
		ServiceAddress: p.ServiceAddress,
	}
}

type recommendationPayload struct {
	ProductID        int    `json:"productId"`
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
	ServiceAddress   string `json:"serviceAddress"`
}

func (r recommendationPayload) toDomain() domain.Recommendation {
	return domain.Recommendation{
		ProductID:        r.ProductID,
		RecommendationID: r.RecommendationID,
		Author:           r.Author,
		Rate:             r.Rate,
		Content:          r.Content,
		ServiceAddress:   r.ServiceAddress,
	}
}

type reviewPayload struct {
	ProductID      int    `json:"productId"`
	ReviewID       int    `json:"reviewId"`
	Author         string `json:"author"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	ServiceAddress string `json:"serviceAddress"`
}

func (r reviewPayload) toDomain() domain.Review {
	return domain.Review{
		ProductID:      r.ProductID,
		ReviewID:       r.ReviewID,
		Author:         r.Author,
		Subject:        r.Subject,
		Content:        r.Content,
		ServiceAddress: r.ServiceAddress,
	}
}
