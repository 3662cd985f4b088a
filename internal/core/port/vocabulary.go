package port

import (
	"context"

	"github.com/bianlab/landscape/internal/core/model"
)

// VocabularyIndex stores vocabulary terms and retrieves them by query.
type VocabularyIndex interface {
	Index(ctx context.Context, terms []model.VocabularyTerm) error
	Search(ctx context.Context, query string, maxResults int) ([]model.VocabularyTerm, error)
}
