// Package bleve indexes vocabulary terms in an in-memory bleve index.
package bleve

import (
	"context"
	"strings"

	"github.com/blevesearch/bleve/v2"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

type indexedTerm struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

type Index struct {
	index bleve.Index
}

// Index implements port.VocabularyIndex.
func (i *Index) Index(ctx context.Context, terms []model.VocabularyTerm) error {
	batch := i.index.NewBatch()

	for _, term := range terms {
		if err := batch.Index(term.Path, indexedTerm{
			Path: term.Path,
			Text: term.Text,
		}); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Search implements port.VocabularyIndex. Substring semantics are
// preserved: a query matches any term whose text or path contains it,
// case-insensitively.
func (i *Index) Search(ctx context.Context, query string, maxResults int) ([]model.VocabularyTerm, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []model.VocabularyTerm{}, nil
	}

	queries := []bleveQuery.Query{}

	for _, field := range []string{"text", "path"} {
		wildcard := bleve.NewWildcardQuery("*" + escapeWildcard(needle) + "*")
		wildcard.SetField(field)
		queries = append(queries, wildcard)
	}

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(queries...))
	req.Size = maxResults
	req.Fields = []string{"path", "text"}

	result, err := i.index.Search(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	terms := make([]model.VocabularyTerm, 0, len(result.Hits))

	for _, hit := range result.Hits {
		term := model.VocabularyTerm{Path: hit.ID}

		if text, ok := hit.Fields["text"].(string); ok {
			term.Text = text
		}

		terms = append(terms, term)
	}

	return terms, nil
}

// escapeWildcard neutralizes wildcard metacharacters in the user query so
// they match literally.
func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}

var wildcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
)

func NewIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(IndexMapping())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Index{index: index}, nil
}

var _ port.VocabularyIndex = &Index{}
