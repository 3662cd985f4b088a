package api

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/adapter/bleve"
	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/core/service"
	"github.com/bianlab/landscape/internal/datamodel"
	"github.com/bianlab/landscape/internal/vocabulary"
)

type mapSource struct {
	documents map[string]string
}

func (s *mapSource) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	body, exists := s.documents[location]
	if !exists {
		return nil, errors.Errorf("no document at location '%s'", location)
	}

	return io.NopCloser(strings.NewReader(body)), nil
}

type stubRenderer struct {
	invocations int
	failure     *model.RenderFailure
}

func (r *stubRenderer) Render(ctx context.Context, req *model.RenderRequest) (*model.RenderResult, error) {
	r.invocations++

	if r.failure != nil {
		return model.NewRenderFailure(r.failure.Category, r.failure.Message), nil
	}

	var buf bytes.Buffer
	buf.WriteString("rendered:")
	buf.WriteString(string(req.Format))

	return model.NewRenderSuccess(buf.Bytes(), req.Format.ContentType()), nil
}

var _ port.Renderer = &stubRenderer{}

const testVocabulary = `{
	"domains": [
		{
			"name": "Payment Order",
			"description": "Handles payment initiation and execution"
		},
		{
			"name": "Customer Offer",
			"description": "Manages product offers to customers"
		}
	]
}`

const testDataModel = "# Data Model\n\nThe **landscape** data model.\n"

func newTestHandler(t *testing.T, renderer port.Renderer) *Handler {
	ctx := context.Background()

	source := &mapSource{
		documents: map[string]string{
			"payments.puml":   "@startuml\ntitle Payments\nrectangle \"Payment Order\"\n@enduml",
			"onboarding.puml": "@startuml\ntitle Onboarding\nrectangle \"Customer Offer\"\n@enduml",
			"vocabulary.json": testVocabulary,
			"data-model.md":   testDataModel,
		},
	}

	store := service.NewContentStore(source)

	entries := []model.CatalogueEntry{
		{ID: "payments", Label: "Payments", Location: "payments.puml", Collection: model.CollectionDiagram},
		{ID: "onboarding", Label: "Onboarding", Location: "onboarding.puml", Collection: model.CollectionDiagram},
	}

	if err := store.LoadAll(ctx, entries); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	pipeline := service.NewRenderPipeline(store, renderer)

	index, err := bleve.NewIndex()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	vocabularyService := vocabulary.NewService(source, "vocabulary.json", index)

	if err := vocabularyService.Load(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	dataModelService := datamodel.NewService(source, "data-model.md")

	return NewHandler(store, pipeline, vocabularyService, dataModelService)
}
