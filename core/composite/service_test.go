package composite

import (
	"context"
	"errors"
	"testing"

	"product-composite-api/core/domain"
	coreerrors "product-composite-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	productIDOK       = 1
	productIDNotFound = 2
	productIDInvalid  = 3
)

// newScenarioService wires the mocks used by most tests: product 1 exists with one
// recommendation and one review, product 2 is unknown and product 3 is invalid.
func newScenarioService(log *callLog, logger *mockLogger) *CompositeService {
	products := &mockProductService{
		log: log,
		getProductFunc: func(ctx context.Context, productID int) (*domain.Product, error) {
			switch productID {
			case productIDNotFound:
				return nil, &coreerrors.NotFoundError{Message: "NOT FOUND: 2"}
			case productIDInvalid:
				return nil, &coreerrors.InvalidInputError{Message: "INVALID: 3"}
			}
			return &domain.Product{ProductID: productID, Name: "name", Weight: 1, ServiceAddress: "mock-address"}, nil
		},
	}
	recommendations := &mockRecommendationService{
		log: log,
		getRecommendationsFunc: func(ctx context.Context, productID int) ([]domain.Recommendation, error) {
			return []domain.Recommendation{
				{ProductID: productID, RecommendationID: 1, Author: "author", Rate: 1, Content: "content", ServiceAddress: "mock address"},
			}, nil
		},
	}
	reviews := &mockReviewService{
		log: log,
		getReviewsFunc: func(ctx context.Context, productID int) ([]domain.Review, error) {
			return []domain.Review{
				{ProductID: productID, ReviewID: 1, Author: "author", Subject: "subject", Content: "content", ServiceAddress: "mock address"},
			}, nil
		},
	}

	return NewCompositeService(products, recommendations, reviews, logger, "composite-host/10.0.0.1:7000")
}

func TestGetProductComposite_Success(t *testing.T) {
	log := &callLog{}
	service := newScenarioService(log, &mockLogger{})

	aggregate, err := service.GetProductComposite(context.Background(), productIDOK)

	require.NoError(t, err)
	assert.Equal(t, productIDOK, aggregate.Product.ProductID)
	assert.Len(t, aggregate.Recommendations, 1)
	assert.Len(t, aggregate.Reviews, 1)
	assert.Equal(t, domain.ServiceAddresses{
		Composite:      "composite-host/10.0.0.1:7000",
		Product:        "mock-address",
		Review:         "mock address",
		Recommendation: "mock address",
	}, aggregate.ServiceAddresses)
	assert.Equal(t, []string{"product", "recommendation", "review"}, log.list())
}

func TestGetProductComposite_NotFound(t *testing.T) {
	log := &callLog{}
	service := newScenarioService(log, &mockLogger{})

	aggregate, err := service.GetProductComposite(context.Background(), productIDNotFound)

	assert.Nil(t, aggregate)
	var notFound *coreerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NOT FOUND: 2", notFound.Message)
	assert.Equal(t, []string{"product"}, log.list(), "no auxiliary call after a failed product lookup")
}

func TestGetProductComposite_InvalidInput(t *testing.T) {
	log := &callLog{}
	service := newScenarioService(log, &mockLogger{})

	aggregate, err := service.GetProductComposite(context.Background(), productIDInvalid)

	assert.Nil(t, aggregate)
	assert.True(t, coreerrors.IsInvalidInput(err))
	assert.Equal(t, "INVALID: 3", err.Error())
	assert.Equal(t, []string{"product"}, log.list())
}

func TestGetProductComposite_UnclassifiedErrorIsPropagatedAsIs(t *testing.T) {
	unclassified := &coreerrors.HTTPStatusError{StatusCode: 503, URL: "http://product/product/1", Body: "down"}
	log := &callLog{}
	service := NewCompositeService(
		&mockProductService{log: log, getProductFunc: func(ctx context.Context, productID int) (*domain.Product, error) {
			return nil, unclassified
		}},
		&mockRecommendationService{log: log},
		&mockReviewService{log: log},
		nil,
		"composite",
	)

	_, err := service.GetProductComposite(context.Background(), productIDOK)

	assert.Same(t, unclassified, err)
	assert.Equal(t, []string{"product"}, log.list())
}

func TestGetProductComposite_EmptyAuxiliaryData(t *testing.T) {
	service := NewCompositeService(
		&mockProductService{getProductFunc: func(ctx context.Context, productID int) (*domain.Product, error) {
			return &domain.Product{ProductID: productID, ServiceAddress: "product-address"}, nil
		}},
		&mockRecommendationService{},
		&mockReviewService{},
		nil,
		"composite",
	)

	aggregate, err := service.GetProductComposite(context.Background(), productIDOK)

	require.NoError(t, err)
	assert.Empty(t, aggregate.Recommendations)
	assert.Empty(t, aggregate.Reviews)
	assert.Equal(t, domain.ServiceAddresses{Composite: "composite", Product: "product-address"}, aggregate.ServiceAddresses)
}

func TestGetProductComposite_AuxiliaryErrorsArePassedThrough(t *testing.T) {
	auxErr := errors.New("review backend contract broken")
	service := NewCompositeService(
		&mockProductService{},
		&mockRecommendationService{},
		&mockReviewService{getReviewsFunc: func(ctx context.Context, productID int) ([]domain.Review, error) {
			return nil, auxErr
		}},
		nil,
		"composite",
	)

	_, err := service.GetProductComposite(context.Background(), productIDOK)

	assert.ErrorIs(t, err, auxErr)
}

func TestGetProductComposite_MismatchedRecordsAreKeptAndReported(t *testing.T) {
	logger := &mockLogger{}
	service := NewCompositeService(
		&mockProductService{},
		&mockRecommendationService{getRecommendationsFunc: func(ctx context.Context, productID int) ([]domain.Recommendation, error) {
			return []domain.Recommendation{{ProductID: productID}, {ProductID: 99}}, nil
		}},
		&mockReviewService{getReviewsFunc: func(ctx context.Context, productID int) ([]domain.Review, error) {
			return []domain.Review{{ProductID: 98}}, nil
		}},
		logger,
		"composite",
	)

	aggregate, err := service.GetProductComposite(context.Background(), productIDOK)

	require.NoError(t, err)
	assert.Len(t, aggregate.Recommendations, 2)
	assert.Len(t, aggregate.Reviews, 1)
	require.Len(t, logger.warnings, 1)
	assert.Equal(t, 2, logger.warnings[0]["mismatched"])
}

func TestGetProductComposite_Idempotent(t *testing.T) {
	service := newScenarioService(nil, &mockLogger{})

	first, err := service.GetProductComposite(context.Background(), productIDOK)
	require.NoError(t, err)

	second, err := service.GetProductComposite(context.Background(), productIDOK)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetProductComposite_ProductIDMatchesRequest(t *testing.T) {
	service := newScenarioService(nil, &mockLogger{})

	for _, id := range []int{0, 1, 4, 1000} {
		aggregate, err := service.GetProductComposite(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, aggregate.Product.ProductID)
	}
}
