package api

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
)

const defaultSearchSize = 20

type SearchVocabularyResponse struct {
	Terms []model.VocabularyTerm `json:"terms"`
}

func (h *Handler) handleSearchVocabulary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("query")
	if query == "" {
		encodeError(w, r, http.StatusBadRequest, "missing query parameter")
		return
	}

	size := getQueryInt(r.URL.Query(), "size", defaultSearchSize)

	terms, err := h.vocabulary.Search(ctx, query, size)
	if err != nil {
		slog.ErrorContext(ctx, "could not search vocabulary", slog.Any("error", errors.WithStack(err)))
		encodeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	encodeJSON(w, r, http.StatusOK, &SearchVocabularyResponse{
		Terms: terms,
	})
}
