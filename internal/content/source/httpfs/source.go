package httpfs

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/port"
)

// Source serves content from a static HTTP server.
type Source struct {
	baseURL *url.URL
	client  *http.Client
}

// Fetch implements port.ContentSource. The location is appended to the
// base URL path, so a base of "https://example.net/content" resolves
// "catalogue.yml" to "https://example.net/content/catalogue.yml".
func (s *Source) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL.JoinPath(location).String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		res.Body.Close()
		return nil, errors.Errorf("unexpected status '%s' for '%s'", res.Status, location)
	}

	return res.Body, nil
}

func New(baseURL *url.URL) *Source {
	return &Source{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ port.ContentSource = &Source{}
