package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/pkg/errors"
)

// ContentStore loads the catalogue documents from a content source and
// exposes them by identifier. Per-document load failures are absorbed: the
// failing entry is replaced with a placeholder document so that downstream
// consumers never observe a missing key for a catalogued id.
type ContentStore struct {
	source port.ContentSource

	mutex     sync.RWMutex
	documents map[model.DocumentID]*model.Document
	catalogue []model.CatalogueEntry
}

func NewContentStore(source port.ContentSource) *ContentStore {
	return &ContentStore{
		source:    source,
		documents: make(map[model.DocumentID]*model.Document),
	}
}

// LoadAll fetches every catalogue entry concurrently and returns once all
// fetches have settled. The previous document set is replaced wholesale.
func (s *ContentStore) LoadAll(ctx context.Context, catalogue []model.CatalogueEntry) error {
	if s.source == nil {
		return errors.New("no content source configured")
	}

	documents := make(map[model.DocumentID]*model.Document, len(catalogue))

	var (
		wg    sync.WaitGroup
		mutex sync.Mutex
	)

	wg.Add(len(catalogue))

	for _, entry := range catalogue {
		go func(entry model.CatalogueEntry) {
			defer wg.Done()

			doc := s.load(ctx, entry)

			mutex.Lock()
			documents[entry.ID] = doc
			mutex.Unlock()
		}(entry)
	}

	wg.Wait()

	s.mutex.Lock()
	s.documents = documents
	s.catalogue = append([]model.CatalogueEntry(nil), catalogue...)
	s.mutex.Unlock()

	slog.InfoContext(ctx, "catalogue loaded", slog.Int("documents", len(documents)))

	return nil
}

func (s *ContentStore) load(ctx context.Context, entry model.CatalogueEntry) *model.Document {
	body, err := s.fetch(ctx, entry.Location)
	if err != nil {
		slog.ErrorContext(ctx, "could not load document, using placeholder",
			slog.String("id", string(entry.ID)),
			slog.String("location", entry.Location),
			slog.Any("error", errors.WithStack(err)),
		)

		return model.NewDocument(entry.ID, entry.Label, entry.Collection, placeholderBody(entry.Label, err))
	}

	return model.NewDocument(entry.ID, entry.Label, entry.Collection, body)
}

func (s *ContentStore) fetch(ctx context.Context, location string) (string, error) {
	r, err := s.source.Fetch(ctx, location)
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}

// Get returns the document stored under the given id. ErrNotFound is only
// returned for ids outside the catalogue; a load failure never removes an
// id from the store.
func (s *ContentStore) Get(id model.DocumentID) (*model.Document, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, errors.Wrapf(port.ErrNotFound, "document '%s'", id)
	}

	return doc, nil
}

// Catalogue returns the entries of the last successful LoadAll, in
// catalogue order.
func (s *ContentStore) Catalogue() []model.CatalogueEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return append([]model.CatalogueEntry(nil), s.catalogue...)
}

// Len returns the number of loaded documents.
func (s *ContentStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.documents)
}

func placeholderBody(label string, cause error) string {
	return fmt.Sprintf("@startuml\ntitle %s (unavailable)\nnote \"Could not load diagram: %v\" as unavailable\n@enduml", label, cause)
}
