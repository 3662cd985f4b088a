// Package catalogue parses the YAML manifest describing the documents
// served by the landscape: their identifiers, labels and locations on the
// content source.
package catalogue

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

type Manifest struct {
	Documents []model.CatalogueEntry `yaml:"documents"`
}

// Parse decodes and validates a catalogue manifest.
func Parse(r io.Reader) (*Manifest, error) {
	var manifest Manifest

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, errors.Wrap(err, "could not decode catalogue manifest")
	}

	if err := manifest.validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &manifest, nil
}

// Load fetches and parses the manifest stored at the given location.
func Load(ctx context.Context, source port.ContentSource, location string) (*Manifest, error) {
	r, err := source.Fetch(ctx, location)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch catalogue manifest '%s'", location)
	}

	defer r.Close()

	manifest, err := Parse(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return manifest, nil
}

func (m *Manifest) validate() error {
	seen := make(map[model.DocumentID]struct{}, len(m.Documents))

	for _, entry := range m.Documents {
		if entry.ID == "" {
			return errors.Errorf("catalogue entry '%s' has an empty id", entry.Label)
		}

		if entry.Location == "" {
			return errors.Errorf("catalogue entry '%s' has an empty location", entry.ID)
		}

		if _, exists := seen[entry.ID]; exists {
			return errors.Errorf("duplicate catalogue id '%s'", entry.ID)
		}

		seen[entry.ID] = struct{}{}
	}

	return nil
}

// Diagrams returns the entries tagged as diagram documents, in manifest
// order.
func (m *Manifest) Diagrams() []model.CatalogueEntry {
	diagrams := make([]model.CatalogueEntry, 0, len(m.Documents))
	for _, entry := range m.Documents {
		if entry.Collection != model.CollectionDiagram {
			continue
		}

		diagrams = append(diagrams, entry)
	}

	return diagrams
}
