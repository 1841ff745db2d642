// ABOUTME: Response DTOs for the product composite endpoint
// ABOUTME: Mirrors the JSON shape consumed by clients of the composite service

package responses

// ProductAggregateResponse is the body of GET /product-composite/{productId}
type ProductAggregateResponse struct {
	ProductID        int                      `json:"productId" doc:"Product identifier"`
	Name             string                   `json:"name" doc:"Product name"`
	Weight           int                      `json:"weight" doc:"Product weight"`
	Recommendations  []RecommendationSummary  `json:"recommendations" doc:"Recommendations for the product, empty when unavailable"`
	Reviews          []ReviewSummary          `json:"reviews" doc:"Reviews of the product, empty when unavailable"`
	ServiceAddresses ServiceAddressesResponse `json:"serviceAddresses" doc:"Instances that served each part of the response"`
}

// RecommendationSummary is a recommendation without its product id
type RecommendationSummary struct {
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
}

// ReviewSummary is a review without its product id
type ReviewSummary struct {
	ReviewID int    `json:"reviewId"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
}

// ServiceAddressesResponse names the instance behind each part of the aggregate
type ServiceAddressesResponse struct {
	Composite      string `json:"cmp,omitempty" doc:"Address of the composite instance"`
	Product        string `json:"product,omitempty" doc:"Address of the product instance"`
	Review         string `json:"review,omitempty" doc:"Address of the review instance"`
	Recommendation string `json:"recommendation,omitempty" doc:"Address of the recommendation instance"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status" example:"UP" doc:"Service status"`
}
