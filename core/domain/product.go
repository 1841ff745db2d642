// ABOUTME: Product domain model as served by the product backend
// ABOUTME: Carries the address of the product service instance that answered

package domain

// Product is the primary resource of a composite request
type Product struct {
	// ProductID identifies the product, never negative
	ProductID int

	// Name is the product's display name
	Name string

	// Weight is the product weight
	Weight int

	// ServiceAddress identifies the product service instance that produced this value
	ServiceAddress string
}
