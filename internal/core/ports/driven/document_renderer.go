package driven

import "github.com/dar-ai/darai-docs/internal/core/domain"

// DocumentRenderer turns an assembled element sequence into a binary
// document stream. Element order is preserved exactly.
type DocumentRenderer interface {
	Render(doc *domain.Document) ([]byte, error)
}
