package driving

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// DocumentService assembles and renders the three document kinds. Each
// call is independent and stateless; a narrative failure inside
// assembly degrades that section, never the whole document.
type DocumentService interface {
	// Comparison renders a side-by-side comparison of two listings
	Comparison(ctx context.Context, a, b *domain.Property) (*domain.RenderedDocument, error)

	// Quote renders a formal price quote for one listing and contact
	Quote(ctx context.Context, property *domain.Property, contact *domain.Contact) (*domain.RenderedDocument, error)

	// Recommendation renders a preference-matched recommendation of
	// 2-3 listings for a contact; other counts are ErrInvalidInput
	Recommendation(ctx context.Context, properties []*domain.Property, contact *domain.Contact) (*domain.RenderedDocument, error)
}
