package services

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
	"github.com/dar-ai/darai-docs/internal/core/ports/driving"
)

// defaultListLimit caps list responses when the caller gives no limit
const defaultListLimit = 10

// Ensure catalogService implements CatalogService
var _ driving.CatalogService = (*catalogService)(nil)

// catalogService implements the CatalogService interface
type catalogService struct {
	properties driven.PropertyStore
	contacts   driven.ContactStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(properties driven.PropertyStore, contacts driven.ContactStore) driving.CatalogService {
	return &catalogService{
		properties: properties,
		contacts:   contacts,
	}
}

// GetProperty retrieves a listing by ID
func (s *catalogService) GetProperty(ctx context.Context, id int) (*domain.Property, error) {
	return s.properties.Get(ctx, id)
}

// ListProperties returns up to limit listings
func (s *catalogService) ListProperties(ctx context.Context, limit int) ([]*domain.Property, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.properties.List(ctx, limit)
}

// GetContact retrieves a contact by ID
func (s *catalogService) GetContact(ctx context.Context, id int) (*domain.Contact, error) {
	return s.contacts.Get(ctx, id)
}

// ListContacts returns up to limit contacts
func (s *catalogService) ListContacts(ctx context.Context, limit int) ([]*domain.Contact, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.contacts.List(ctx, limit)
}
