package mocks

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// MockContactStore is a mock implementation of ContactStore for testing
type MockContactStore struct {
	contacts map[int]*domain.Contact
	order    []int
}

// NewMockContactStore creates a new MockContactStore
func NewMockContactStore(contacts ...*domain.Contact) *MockContactStore {
	m := &MockContactStore{contacts: make(map[int]*domain.Contact)}
	for _, c := range contacts {
		m.Add(c)
	}
	return m
}

// Add seeds a contact into the store
func (m *MockContactStore) Add(c *domain.Contact) {
	if _, ok := m.contacts[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.contacts[c.ID] = c
}

func (m *MockContactStore) Get(ctx context.Context, id int) (*domain.Contact, error) {
	c, ok := m.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *MockContactStore) List(ctx context.Context, limit int) ([]*domain.Contact, error) {
	if limit <= 0 || limit > len(m.order) {
		limit = len(m.order)
	}
	out := make([]*domain.Contact, 0, limit)
	for _, id := range m.order[:limit] {
		out = append(out, m.contacts[id])
	}
	return out, nil
}

func (m *MockContactStore) Count() int {
	return len(m.contacts)
}
