package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

func TestContentStoreLoadAll(t *testing.T) {
	source := &mapSource{
		documents: map[string]string{
			"puml/business_support.puml": "@startuml\ntitle Business Support\nA -> B\n@enduml",
			"puml/risk.puml":             "@startuml\ntitle Risk\nC -> D\n@enduml",
		},
		failing: map[string]error{
			"puml/missing.puml": errors.New("connection refused"),
		},
	}

	catalogue := []model.CatalogueEntry{
		{ID: "business_support", Label: "Business Support", Location: "puml/business_support.puml", Collection: model.CollectionDiagram},
		{ID: "missing", Label: "Missing Domain", Location: "puml/missing.puml", Collection: model.CollectionDiagram},
		{ID: "risk", Label: "Risk", Location: "puml/risk.puml", Collection: model.CollectionDiagram},
	}

	store := NewContentStore(source)

	if err := store.LoadAll(context.Background(), catalogue); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Siblings of a failed entry load their real content
	doc, err := store.Get("business_support")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := source.documents["puml/business_support.puml"], doc.Body(); e != g {
		t.Errorf("doc.Body(): expected %q, got %q", e, g)
	}

	// A failed entry yields a placeholder, never a missing key
	placeholder, err := store.Get("missing")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(placeholder.Body(), "@startuml") || !strings.Contains(placeholder.Body(), "@enduml") {
		t.Errorf("placeholder is not a valid empty diagram:\n%s", placeholder.Body())
	}

	if !strings.Contains(placeholder.Body(), "Missing Domain") {
		t.Errorf("placeholder does not name the document label:\n%s", placeholder.Body())
	}

	if !strings.Contains(placeholder.Body(), "connection refused") {
		t.Errorf("placeholder does not carry the failure reason:\n%s", placeholder.Body())
	}

	if e, g := 3, store.Len(); e != g {
		t.Errorf("store.Len(): expected %d, got %d", e, g)
	}
}

func TestContentStoreGetUnknownID(t *testing.T) {
	store := NewContentStore(&mapSource{})

	if err := store.LoadAll(context.Background(), nil); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.Get("never-catalogued"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %v", err)
	}
}

func TestContentStoreReload(t *testing.T) {
	source := &mapSource{
		documents: map[string]string{
			"a.puml": "@startuml\nv1\n@enduml",
		},
	}

	catalogue := []model.CatalogueEntry{
		{ID: "a", Label: "A", Location: "a.puml", Collection: model.CollectionDiagram},
	}

	store := NewContentStore(source)

	if err := store.LoadAll(context.Background(), catalogue); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	source.documents["a.puml"] = "@startuml\nv2\n@enduml"

	// No implicit refetch
	doc, err := store.Get("a")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(doc.Body(), "v1") {
		t.Errorf("document refetched implicitly:\n%s", doc.Body())
	}

	if err := store.LoadAll(context.Background(), catalogue); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err = store.Get("a")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(doc.Body(), "v2") {
		t.Errorf("explicit reload did not replace the document:\n%s", doc.Body())
	}
}
