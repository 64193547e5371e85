package mocks

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// MockPropertyStore is a mock implementation of PropertyStore for testing
type MockPropertyStore struct {
	properties map[int]*domain.Property
	order      []int
}

// NewMockPropertyStore creates a new MockPropertyStore
func NewMockPropertyStore(properties ...*domain.Property) *MockPropertyStore {
	m := &MockPropertyStore{properties: make(map[int]*domain.Property)}
	for _, p := range properties {
		m.Add(p)
	}
	return m
}

// Add seeds a listing into the store
func (m *MockPropertyStore) Add(p *domain.Property) {
	if _, ok := m.properties[p.ID]; !ok {
		m.order = append(m.order, p.ID)
	}
	m.properties[p.ID] = p
}

func (m *MockPropertyStore) Get(ctx context.Context, id int) (*domain.Property, error) {
	p, ok := m.properties[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *MockPropertyStore) List(ctx context.Context, limit int) ([]*domain.Property, error) {
	if limit <= 0 || limit > len(m.order) {
		limit = len(m.order)
	}
	out := make([]*domain.Property, 0, limit)
	for _, id := range m.order[:limit] {
		out = append(out, m.properties[id])
	}
	return out, nil
}

func (m *MockPropertyStore) Count() int {
	return len(m.properties)
}
