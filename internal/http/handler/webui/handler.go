// Package webui serves the embedded single-page interface.
package webui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed assets/**
var assetsFS embed.FS

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	files, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(errors.WithStack(err))
	}

	h.mux.Handle("/", http.FileServerFS(files))

	return h
}

var _ http.Handler = &Handler{}
