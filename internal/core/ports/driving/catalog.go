package driving

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// CatalogService exposes read access to the loaded datasets
type CatalogService interface {
	// GetProperty retrieves a listing by ID, or ErrNotFound
	GetProperty(ctx context.Context, id int) (*domain.Property, error)

	// ListProperties returns up to limit listings (default 10)
	ListProperties(ctx context.Context, limit int) ([]*domain.Property, error)

	// GetContact retrieves a contact by ID, or ErrNotFound
	GetContact(ctx context.Context, id int) (*domain.Contact, error)

	// ListContacts returns up to limit contacts (default 10)
	ListContacts(ctx context.Context, limit int) ([]*domain.Contact, error)
}
