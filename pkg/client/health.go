package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/http/handler/health"
)

// Health queries the status endpoint. It lives outside the API prefix so
// the request is built against the base URL directly.
func (c *Client) Health(ctx context.Context) (*health.Response, error) {
	u := c.baseURL.JoinPath("/health")

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var status health.Response
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, errors.WithStack(err)
	}

	return &status, nil
}
