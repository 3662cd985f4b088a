// Package health exposes a composite status endpoint covering the
// renderer prerequisites and the loaded content.
package health

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/service"
)

type Handler struct {
	store    *service.ContentStore
	pipeline *service.RenderPipeline
}

type Response struct {
	Status    string           `json:"status"`
	Documents int              `json:"documents"`
	Readiness *model.Readiness `json:"readiness,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := &Response{
		Status:    "ok",
		Documents: h.store.Len(),
	}

	readiness, err := h.pipeline.CheckReadiness(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not check readiness", slog.Any("error", errors.WithStack(err)))
		res.Status = "degraded"
	} else {
		res.Readiness = readiness
		if !readiness.Ready() {
			res.Status = "degraded"
		}
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

func NewHandler(store *service.ContentStore, pipeline *service.RenderPipeline) *Handler {
	return &Handler{
		store:    store,
		pipeline: pipeline,
	}
}

var _ http.Handler = &Handler{}
