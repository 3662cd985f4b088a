package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerMountPrefixes(t *testing.T) {
	var apiPath, rootPath string

	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiPath = r.URL.Path
	})
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rootPath = r.URL.Path
	})

	server := NewServer(
		WithMount("/api/v1/", api),
		WithMount("/", root),
	)

	handler := server.Handler()

	req := httptest.NewRequest("GET", "/api/v1/diagrams", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := "/diagrams", apiPath; e != g {
		t.Errorf("apiPath: expected '%s', got '%s'", e, g)
	}

	req = httptest.NewRequest("GET", "/index.html", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := "/index.html", rootPath; e != g {
		t.Errorf("rootPath: expected '%s', got '%s'", e, g)
	}
}

func TestHandlerBaseURL(t *testing.T) {
	var gotPath string

	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	})

	server := NewServer(
		WithBaseURL("/landscape"),
		WithMount("/api/v1/", api),
	)

	handler := server.Handler()

	req := httptest.NewRequest("GET", "/landscape/api/v1/diagrams", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := "/diagrams", gotPath; e != g {
		t.Errorf("gotPath: expected '%s', got '%s'", e, g)
	}
}
