package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/core/service"
)

// RenderRequest selects catalogue documents to render, or carries raw
// diagram source in Content. The two modes are exclusive.
type RenderRequest struct {
	Documents []model.DocumentID `json:"documents,omitempty"`
	Content   string             `json:"content,omitempty"`
	Format    string             `json:"format"`
}

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var renderRequest RenderRequest

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&renderRequest); err != nil {
		slog.ErrorContext(ctx, "could not decode request body", slog.Any("error", errors.WithStack(err)))
		encodeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(renderRequest.Documents) == 0 && renderRequest.Content == "" {
		encodeError(w, r, http.StatusBadRequest, "no documents selected")
		return
	}

	format, err := model.ParseFormat(renderRequest.Format)
	if err != nil {
		encodeError(w, r, http.StatusBadRequest, fmt.Sprintf("unsupported format '%s'", renderRequest.Format))
		return
	}

	session := service.NewRenderSession(renderRequest.Documents...)

	var result *model.RenderResult
	if renderRequest.Content != "" {
		result, err = h.pipeline.Render(ctx, session, renderRequest.Content, format)
	} else {
		result, err = h.pipeline.Execute(ctx, session, format)
	}

	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			encodeError(w, r, http.StatusBadRequest, "unknown diagram in selection")
			return
		}

		slog.ErrorContext(ctx, "could not execute render", slog.String("sessionID", session.ID()), slog.Any("error", errors.WithStack(err)))
		encodeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	if !result.Succeeded() {
		failure := result.Failure()

		status := http.StatusInternalServerError
		if failure.Category == model.FailureInvocation {
			status = http.StatusServiceUnavailable
		}

		encodeError(w, r, status, failure.Message)
		return
	}

	w.Header().Set("Content-Type", result.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"landscape.%s\"", format))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Payload()); err != nil {
		slog.ErrorContext(ctx, "could not write response", slog.Any("error", errors.WithStack(err)))
	}
}
