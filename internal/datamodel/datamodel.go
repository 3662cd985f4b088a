// Package datamodel serves the data-model markdown document as HTML.
package datamodel

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/markdown"
)

type Service struct {
	source   port.ContentSource
	location string
}

func NewService(source port.ContentSource, location string) *Service {
	return &Service{
		source:   source,
		location: location,
	}
}

// Render fetches the data-model document and converts it to HTML. The
// document is read on every call so edits show up without a restart.
func (s *Service) Render(ctx context.Context) ([]byte, map[string]interface{}, error) {
	r, err := s.source.Fetch(ctx, s.location)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not fetch data model '%s'", s.location)
	}

	defer r.Close()

	source, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read data model")
	}

	html, metadata, err := markdown.Render(source)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not render data model")
	}

	return html, metadata, nil
}
