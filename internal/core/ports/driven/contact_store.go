package driven

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// ContactStore provides read-only access to the client contacts loaded
// at process startup. Implementations expose no mutation operations.
type ContactStore interface {
	// Get retrieves a contact by ID, or ErrNotFound
	Get(ctx context.Context, id int) (*domain.Contact, error)

	// List returns up to limit contacts in load order
	List(ctx context.Context, limit int) ([]*domain.Contact, error)

	// Count returns the number of loaded contacts
	Count() int
}
