package mocks

import (
	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// MockDocumentRenderer is a DocumentRenderer for testing. It records
// every document it is handed and returns a fixed byte payload, so
// assembly tests can inspect element sequences without a layout engine.
type MockDocumentRenderer struct {
	RenderFn func(doc *domain.Document) ([]byte, error)

	// Rendered records the documents passed to Render
	Rendered []*domain.Document
}

// NewMockDocumentRenderer creates a new MockDocumentRenderer
func NewMockDocumentRenderer() *MockDocumentRenderer {
	return &MockDocumentRenderer{}
}

func (m *MockDocumentRenderer) Render(doc *domain.Document) ([]byte, error) {
	m.Rendered = append(m.Rendered, doc)
	if m.RenderFn != nil {
		return m.RenderFn(doc)
	}
	return []byte("%PDF-mock"), nil
}

// Last returns the most recently rendered document, or nil
func (m *MockDocumentRenderer) Last() *domain.Document {
	if len(m.Rendered) == 0 {
		return nil
	}
	return m.Rendered[len(m.Rendered)-1]
}
