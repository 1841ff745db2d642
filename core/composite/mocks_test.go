package composite

import (
	"context"
	"sync"

	"product-composite-api/core/domain"
)

// callLog records the order in which backends are called
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	log            *callLog
	getProductFunc func(ctx context.Context, productID int) (*domain.Product, error)
}

func (m *mockProductService) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	if m.log != nil {
		m.log.add("product")
	}
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, productID)
	}
	return &domain.Product{ProductID: productID}, nil
}

// mockRecommendationService is a mock implementation of the RecommendationService interface
type mockRecommendationService struct {
	log                    *callLog
	getRecommendationsFunc func(ctx context.Context, productID int) ([]domain.Recommendation, error)
}

func (m *mockRecommendationService) GetRecommendations(ctx context.Context, productID int) ([]domain.Recommendation, error) {
	if m.log != nil {
		m.log.add("recommendation")
	}
	if m.getRecommendationsFunc != nil {
		return m.getRecommendationsFunc(ctx, productID)
	}
	return []domain.Recommendation{}, nil
}

// mockReviewService is a mock implementation of the ReviewService interface
type mockReviewService struct {
	log            *callLog
	getReviewsFunc func(ctx context.Context, productID int) ([]domain.Review, error)
}

func (m *mockReviewService) GetReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	if m.log != nil {
		m.log.add("review")
	}
	if m.getReviewsFunc != nil {
		return m.getReviewsFunc(ctx, productID)
	}
	return []domain.Review{}, nil
}

// mockLogger counts warnings
type mockLogger struct {
	mu       sync.Mutex
	warnings []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fields)
}
