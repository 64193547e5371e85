package jsonstore

import (
	"context"
	"log"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
)

// Ensure PropertyStore implements driven.PropertyStore
var _ driven.PropertyStore = (*PropertyStore)(nil)

// PropertyStore is a read-only lookup of listings keyed by ID
type PropertyStore struct {
	byID  map[int]*domain.Property
	order []int
}

// NewPropertyStore loads listings from a JSON array file. Records are
// deduplicated by ID, first occurrence wins; file order is kept for
// listing.
func NewPropertyStore(path string) *PropertyStore {
	var records []*domain.Property
	if err := loadJSON(path, &records); err != nil {
		log.Printf("jsonstore: loading properties from %s: %v (starting empty)", path, err)
		records = nil
	}

	s := &PropertyStore{byID: make(map[int]*domain.Property, len(records))}
	for _, p := range records {
		if _, dup := s.byID[p.ID]; dup {
			log.Printf("jsonstore: duplicate property id %d skipped", p.ID)
			continue
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

// Get retrieves a listing by ID
func (s *PropertyStore) Get(ctx context.Context, id int) (*domain.Property, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List returns up to limit listings in file order
func (s *PropertyStore) List(ctx context.Context, limit int) ([]*domain.Property, error) {
	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]*domain.Property, 0, limit)
	for _, id := range s.order[:limit] {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Count returns the number of loaded listings
func (s *PropertyStore) Count() int {
	return len(s.byID)
}
