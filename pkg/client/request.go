package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) request(ctx context.Context, method string, path string, query url.Values, body io.Reader, result io.Writer) (http.Header, error) {
	u := c.baseURL.JoinPath("/api/v1", path)

	if query != nil {
		u.RawQuery = query.Encode()
	}

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", u.Path),
		slog.String("host", u.Host),
	)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, errors.Errorf("unexpected response code %d: %s", res.StatusCode, apiErr.Error)
		}

		return nil, errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Header, nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, query url.Values, body io.Reader, result any) error {
	var buff bytes.Buffer

	if _, err := c.request(ctx, method, path, query, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
