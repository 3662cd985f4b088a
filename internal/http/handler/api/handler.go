package api

import (
	"net/http"

	"github.com/bianlab/landscape/internal/core/service"
	"github.com/bianlab/landscape/internal/datamodel"
	"github.com/bianlab/landscape/internal/vocabulary"
)

type Handler struct {
	store      *service.ContentStore
	pipeline   *service.RenderPipeline
	vocabulary *vocabulary.Service
	dataModel  *datamodel.Service
	mux        *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *service.ContentStore, pipeline *service.RenderPipeline, vocabulary *vocabulary.Service, dataModel *datamodel.Service) *Handler {
	h := &Handler{
		store:      store,
		pipeline:   pipeline,
		vocabulary: vocabulary,
		dataModel:  dataModel,
		mux:        &http.ServeMux{},
	}

	h.mux.Handle("GET /diagrams", http.HandlerFunc(h.handleListDiagrams))
	h.mux.Handle("GET /diagrams/{diagramID}", http.HandlerFunc(h.handleGetDiagram))
	h.mux.Handle("POST /render", http.HandlerFunc(h.handleRender))
	h.mux.Handle("GET /vocabulary/search", http.HandlerFunc(h.handleSearchVocabulary))
	h.mux.Handle("GET /datamodel", http.HandlerFunc(h.handleGetDataModel))

	return h
}

var _ http.Handler = &Handler{}
