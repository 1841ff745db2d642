package handlers

import (
	"context"
	"sync"

	"product-composite-api/core/domain"
)

// mockCompositeService is a mock implementation of the composite service
type mockCompositeService struct {
	getProductCompositeFunc func(ctx context.Context, productID int) (*domain.ProductAggregate, error)
}

func (m *mockCompositeService) GetProductComposite(ctx context.Context, productID int) (*domain.ProductAggregate, error) {
	if m.getProductCompositeFunc != nil {
		return m.getProductCompositeFunc(ctx, productID)
	}
	return nil, nil
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// mockLogger records every message it receives
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) add(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, message: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.add("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.add("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.add("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.add("error", msg, fields) }

func (m *mockLogger) byLevel(level string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []logEntry
	for _, e := range m.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
