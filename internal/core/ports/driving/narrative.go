package driving

import (
	"context"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

// NarrativeService produces advisory text for documents. Both
// operations return a usable narrative even when the external provider
// fails: the result is then a deterministic, locally computed fallback.
type NarrativeService interface {
	// SummarizeComparison produces a structured comparison of two
	// listings (overview, value analysis, pros/cons, buyer profiles)
	SummarizeComparison(ctx context.Context, a, b *domain.Property) domain.Narrative

	// RecommendProperties produces a ranked recommendation of 2-3
	// listings matched against the contact's preference profile
	RecommendProperties(ctx context.Context, properties []*domain.Property, contact *domain.Contact) domain.Narrative

	// Ping verifies the narrative provider is reachable
	Ping(ctx context.Context) error
}
