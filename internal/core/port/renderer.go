package port

import (
	"context"

	"github.com/bianlab/landscape/internal/core/model"
)

// Renderer submits a document to the external rendering engine. A failed
// render is reported through the result value; the error return is
// reserved for misuse of the interface itself (e.g. invalid request).
type Renderer interface {
	Render(ctx context.Context, req *model.RenderRequest) (*model.RenderResult, error)
}

// ReadinessChecker reports the presence of the renderer prerequisites.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) (*model.Readiness, error)
}
