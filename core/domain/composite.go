// ABOUTME: Composite domain model aggregating a product with its recommendations and reviews
// ABOUTME: Records which service instance produced each part of the aggregate

package domain

// ServiceAddresses describes which instance of each service handled a composite request.
// An empty field means no instance contributed to that part of the response.
type ServiceAddresses struct {
	Composite      string
	Product        string
	Review         string
	Recommendation string
}

// ProductAggregate is the result of one composite request
type ProductAggregate struct {
	Product          Product
	Recommendations  []Recommendation
	Reviews          []Review
	ServiceAddresses ServiceAddresses
}

// NewServiceAddresses builds the address bundle for a composite response.
// The review and recommendation addresses are taken from the first item of each
// sequence and left empty when the sequence is empty.
func NewServiceAddresses(composite string, product Product, recommendations []Recommendation, reviews []Review) ServiceAddresses {
	addresses := ServiceAddresses{
		Composite: composite,
		Product:   product.ServiceAddress,
	}

	if len(reviews) > 0 {
		addresses.Review = reviews[0].ServiceAddress
	}

	if len(recommendations) > 0 {
		addresses.Recommendation = recommendations[0].ServiceAddress
	}

	return addresses
}
