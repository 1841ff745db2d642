// ABOUTME: Recommendation domain model as served by the recommendation backend
// ABOUTME: Zero or more recommendations belong to a single product

package domain

// Recommendation is a rated recommendation for a product
type Recommendation struct {
	ProductID        int
	RecommendationID int
	Author           string
	Rate             int
	Content          string

	// ServiceAddress identifies the recommendation service instance that produced this value
	ServiceAddress string
}
