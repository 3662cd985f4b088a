package vocabulary

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/metrics"
)

// Terms flattens a vocabulary value into its leaf terms: every string,
// number or bool leaf becomes a term addressed by its dotted path.
func Terms(value *Value) []model.VocabularyTerm {
	terms := []model.VocabularyTerm{}

	// Walk never fails when the visitor does not
	_ = Walk(value, func(path []string, v *Value) error {
		var text string

		switch v.Kind() {
		case KindString:
			text = v.Text()
		case KindNumber:
			text = v.Number().String()
		case KindBool:
			if v.Bool() {
				text = "true"
			} else {
				text = "false"
			}
		default:
			return nil
		}

		terms = append(terms, model.VocabularyTerm{
			Path: strings.Join(path, "."),
			Text: text,
		})

		return nil
	})

	return terms
}

// Service loads the vocabulary document from the content source and
// answers search queries against its terms.
type Service struct {
	source   port.ContentSource
	location string
	index    port.VocabularyIndex
}

func NewService(source port.ContentSource, location string, index port.VocabularyIndex) *Service {
	return &Service{
		source:   source,
		location: location,
		index:    index,
	}
}

// Load fetches, decodes and indexes the vocabulary document.
func (s *Service) Load(ctx context.Context) error {
	r, err := s.source.Fetch(ctx, s.location)
	if err != nil {
		return errors.Wrapf(err, "could not fetch vocabulary '%s'", s.location)
	}

	defer r.Close()

	value, err := Decode(r)
	if err != nil {
		return errors.Wrap(err, "could not decode vocabulary")
	}

	if err := s.index.Index(ctx, Terms(value)); err != nil {
		return errors.Wrap(err, "could not index vocabulary terms")
	}

	return nil
}

func (s *Service) Search(ctx context.Context, query string, maxResults int) ([]model.VocabularyTerm, error) {
	metrics.TotalSearchRequests.Add(1)

	terms, err := s.index.Search(ctx, query, maxResults)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return terms, nil
}
