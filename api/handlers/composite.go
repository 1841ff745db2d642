// ABOUTME: Product composite handler for the Huma API
// ABOUTME: Exposes the aggregated view of a product with its recommendations and reviews

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"product-composite-api/api/dto/mappers"
	"product-composite-api/api/dto/responses"
	"product-composite-api/core/errors"
	"product-composite-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// CompositeHandler handles product composite requests
type CompositeHandler struct {
	compositeService interfaces.CompositeService
	logger           interfaces.Logger
	now              func() time.Time
}

// NewCompositeHandler creates a new composite handler
func NewCompositeHandler(compositeService interfaces.CompositeService, logger interfaces.Logger) *CompositeHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &CompositeHandler{
		compositeService: compositeService,
		logger:           logger,
		now:              time.Now,
	}
}

// RegisterRoutes registers the composite routes
func (h *CompositeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getProductComposite",
		Method:      http.MethodGet,
		Path:        "/product-composite/{productId}",
		Summary:     "Get a composite product",
		Description: "Returns the product together with its recommendations and reviews",
		Tags:        []string{"ProductComposite"},
	}, h.GetProductComposite)
}

// GetProductCompositeInput defines the input for the composite operation
type GetProductCompositeInput struct {
	// Parsed in the handler so malformed ids get the same error body as other failures
	ProductID string `path:"productId" example:"1" doc:"Product identifier"`

	// Path is filled by Resolve
	Path string
}

// Resolve captures the request path for error bodies
func (i *GetProductCompositeInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.Path = u.Path
	return nil
}

// GetProductCompositeOutput defines the output for the composite operation
type GetProductCompositeOutput struct {
	Body responses.ProductAggregateResponse
}

// GetProductComposite handles GET /product-composite/{productId}
func (h *CompositeHandler) GetProductComposite(ctx context.Context, input *GetProductCompositeInput) (*GetProductCompositeOutput, error) {
	productID, err := strconv.Atoi(input.ProductID)
	if err != nil {
		invalid := &errors.InvalidInputError{Message: fmt.Sprintf("Invalid productId: %s", input.ProductID)}
		return nil, toHTTPError(invalid, input.Path, h.now(), h.logger)
	}

	h.logger.Debug("Will get composite product info", map[string]interface{}{
		"product_id": productID,
	})

	aggregate, err := h.compositeService.GetProductComposite(ctx, productID)
	if err != nil {
		return nil, toHTTPError(err, input.Path, h.now(), h.logger)
	}

	return &GetProductCompositeOutput{
		Body: *mappers.ToProductAggregateResponse(aggregate),
	}, nil
}
