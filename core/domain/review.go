// ABOUTME: Review domain model as served by the review backend
// ABOUTME: Zero or more reviews belong to a single product

package domain

// Review is a written review of a product
type Review struct {
	ProductID int
	ReviewID  int
	Author    string
	Subject   string
	Content   string

	// ServiceAddress identifies the review service instance that produced this value
	ServiceAddress string
}
