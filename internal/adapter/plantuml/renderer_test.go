package plantuml

import (
	"context"
	"testing"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/pkg/errors"
)

func TestRenderMissingJar(t *testing.T) {
	renderer := NewRenderer("testdata/does-not-exist.jar")

	req, err := model.NewRenderRequest("@startuml\nA -> B\n@enduml", model.FormatSVG)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	result, err := renderer.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if result.Succeeded() {
		t.Fatal("expected a failure result")
	}

	if e, g := model.FailureInvocation, result.Failure().Category; e != g {
		t.Errorf("failure category: expected %q, got %q", e, g)
	}
}

func TestInstallType(t *testing.T) {
	if e, g := "Homebrew", installType("/opt/homebrew/bin/dot"); e != g {
		t.Errorf("installType: expected %q, got %q", e, g)
	}

	if e, g := "System", installType("/usr/bin/dot"); e != g {
		t.Errorf("installType: expected %q, got %q", e, g)
	}
}
