package driven

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// PropertyStore provides read-only access to the listings loaded at
// process startup. Implementations expose no mutation operations.
type PropertyStore interface {
	// Get retrieves a listing by ID, or ErrNotFound
	Get(ctx context.Context, id int) (*domain.Property, error)

	// List returns up to limit listings in load order
	List(ctx context.Context, limit int) ([]*domain.Property, error)

	// Count returns the number of loaded listings
	Count() int
}
