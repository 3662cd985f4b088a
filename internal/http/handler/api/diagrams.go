package api

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

type ListDiagramsResponse struct {
	Diagrams []*Diagram `json:"diagrams"`
}

type Diagram struct {
	ID         model.DocumentID `json:"id"`
	Label      string           `json:"label"`
	Collection string           `json:"collection"`
}

type GetDiagramResponse struct {
	Diagram *Diagram `json:"diagram"`
	Body    string   `json:"body"`
	Size    string   `json:"size"`
}

func (h *Handler) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	res := &ListDiagramsResponse{
		Diagrams: []*Diagram{},
	}

	for _, entry := range h.store.Catalogue() {
		if entry.Collection != model.CollectionDiagram {
			continue
		}

		res.Diagrams = append(res.Diagrams, &Diagram{
			ID:         entry.ID,
			Label:      entry.Label,
			Collection: entry.Collection,
		})
	}

	encodeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	diagramID := model.DocumentID(r.PathValue("diagramID"))

	document, err := h.store.Get(diagramID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			encodeError(w, r, http.StatusNotFound, "unknown diagram")
			return
		}

		slog.ErrorContext(ctx, "could not get diagram", slog.Any("error", errors.WithStack(err)))
		encodeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	encodeJSON(w, r, http.StatusOK, &GetDiagramResponse{
		Diagram: &Diagram{
			ID:         document.ID(),
			Label:      document.Label(),
			Collection: document.Collection(),
		},
		Body: document.Body(),
		Size: humanize.Bytes(uint64(len(document.Body()))),
	})
}
