package api

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type DataModelResponse struct {
	HTML     string                 `json:"html"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (h *Handler) handleGetDataModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	html, metadata, err := h.dataModel.Render(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not render data model", slog.Any("error", errors.WithStack(err)))
		encodeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	encodeJSON(w, r, http.StatusOK, &DataModelResponse{
		HTML:     string(html),
		Metadata: metadata,
	})
}
