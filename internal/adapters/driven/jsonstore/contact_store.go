package jsonstore

import (
	"context"
	"log"

	"github.com/dar-ai/darai-docs/internal/core/domain"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
)

// Ensure ContactStore implements driven.ContactStore
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is a read-only lookup of client contacts keyed by ID
type ContactStore struct {
	byID  map[int]*domain.Contact
	order []int
}

// NewContactStore loads contacts from a JSON array file. Records are
// deduplicated by ID, first occurrence wins.
func NewContactStore(path string) *ContactStore {
	var records []*domain.Contact
	if err := loadJSON(path, &records); err != nil {
		log.Printf("jsonstore: loading contacts from %s: %v (starting empty)", path, err)
		records = nil
	}

	s := &ContactStore{byID: make(map[int]*domain.Contact, len(records))}
	for _, c := range records {
		if _, dup := s.byID[c.ID]; dup {
			log.Printf("jsonstore: duplicate contact id %d skipped", c.ID)
			continue
		}
		s.byID[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return s
}

// Get retrieves a contact by ID
func (s *ContactStore) Get(ctx context.Context, id int) (*domain.Contact, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List returns up to limit contacts in file order
func (s *ContactStore) List(ctx context.Context, limit int) ([]*domain.Contact, error) {
	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]*domain.Contact, 0, limit)
	for _, id := range s.order[:limit] {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Count returns the number of loaded contacts
func (s *ContactStore) Count() int {
	return len(s.byID)
}
