// ABOUTME: Public types for the product composite library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package composite

import "product-composite-api/core/domain"

// ProductComposite is a product with its recommendations and reviews
type ProductComposite struct {
	ProductID        int              `json:"productId"`
	Name             string           `json:"name"`
	Weight           int              `json:"weight"`
	Recommendations  []Recommendation `json:"recommendations"`
	Reviews          []Review         `json:"reviews"`
	ServiceAddresses ServiceAddresses `json:"serviceAddresses"`
}

// Recommendation represents a recommendation of the product
type Recommendation struct {
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
}

// Review represents a review of the product
type Review struct {
	ReviewID int    `json:"reviewId"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
}

// ServiceAddresses tells which instance served each part
type ServiceAddresses struct {
	Composite      string `json:"cmp,omitempty"`
	Product        string `json:"product,omitempty"`
	Review         string `json:"review,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// fromDomainAggregate converts the core aggregate to the public type
func fromDomainAggregate(a *domain.ProductAggregate) *ProductComposite {
	if a == nil {
		return nil
	}

	pc := &ProductComposite{
		ProductID:       a.Product.ProductID,
		Name:            a.Product.Name,
		Weight:          a.Product.Weight,
		Recommendations: make([]Recommendation, len(a.Recommendations)),
		Reviews:         make([]Review, len(a.Reviews)),
		ServiceAddresses: ServiceAddresses{
			Composite:      a.ServiceAddresses.Composite,
			Product:        a.ServiceAddresses.Product,
			Review:         a.ServiceAddresses.Review,
			Recommendation: a.ServiceAddresses.Recommendation,
		},
	}

	for i, r := range a.Recommendations {
		pc.Recommendations[i] = Recommendation{
			RecommendationID: r.RecommendationID,
			Author:           r.Author,
			Rate:             r.Rate,
			Content:          r.Content,
		}
	}

	for i, r := range a.Reviews {
		pc.Reviews[i] = Review{
			ReviewID: r.ReviewID,
			Author:   r.Author,
			Subject:  r.Subject,
			Content:  r.Content,
		}
	}

	return pc
}
