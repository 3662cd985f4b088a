package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/service"
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

type staticChecker struct {
	readiness *model.Readiness
}

func (c *staticChecker) CheckReadiness(ctx context.Context) (*model.Readiness, error) {
	return c.readiness, nil
}

type noopRenderer struct{}

func (r *noopRenderer) Render(ctx context.Context, req *model.RenderRequest) (*model.RenderResult, error) {
	return model.NewRenderSuccess([]byte("ok"), req.Format.ContentType()), nil
}

func newTestStore(t *testing.T) *service.ContentStore {
	source := &mapSource{
		documents: map[string]string{
			"payments.puml": "@startuml\n@enduml",
		},
	}

	store := service.NewContentStore(source)

	entries := []model.CatalogueEntry{
		{ID: "payments", Label: "Payments", Location: "payments.puml", Collection: model.CollectionDiagram},
	}

	if err := store.LoadAll(context.Background(), entries); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return store
}

func TestHandlerReady(t *testing.T) {
	store := newTestStore(t)

	checker := &staticChecker{
		readiness: &model.Readiness{
			RuntimeAvailable:  true,
			ArtifactAvailable: true,
			Graphviz: []model.GraphvizInstallation{
				{Path: "/usr/bin/dot", Type: "system", Version: "dot - graphviz version 9.0.0"},
			},
		},
	}

	pipeline := service.NewRenderPipeline(store, &noopRenderer{},
		service.WithRenderPipelineReadinessChecker(checker),
	)

	handler := NewHandler(store, pipeline)

	req := httptest.NewRequest("GET", "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	var body Response
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "ok", body.Status; e != g {
		t.Errorf("body.Status: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, body.Documents; e != g {
		t.Errorf("body.Documents: expected %d, got %d", e, g)
	}

	if body.Readiness == nil || !body.Readiness.Ready() {
		t.Errorf("body.Readiness: expected ready, got %+v", body.Readiness)
	}
}

func TestHandlerDegraded(t *testing.T) {
	store := newTestStore(t)

	checker := &staticChecker{
		readiness: &model.Readiness{
			RuntimeAvailable:  true,
			ArtifactAvailable: false,
		},
	}

	pipeline := service.NewRenderPipeline(store, &noopRenderer{},
		service.WithRenderPipelineReadinessChecker(checker),
	)

	handler := NewHandler(store, pipeline)

	req := httptest.NewRequest("GET", "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	var body Response
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "degraded", body.Status; e != g {
		t.Errorf("body.Status: expected '%s', got '%s'", e, g)
	}
}

func TestHandlerWithoutChecker(t *testing.T) {
	store := newTestStore(t)
	pipeline := service.NewRenderPipeline(store, &noopRenderer{})

	handler := NewHandler(store, pipeline)

	req := httptest.NewRequest("GET", "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	var body Response
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "degraded", body.Status; e != g {
		t.Errorf("body.Status: expected '%s', got '%s'", e, g)
	}
}
