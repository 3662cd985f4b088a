package client

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/http/handler/api"
)

// Render submits the selection and returns the rendered image with its
// content type.
func (c *Client) Render(ctx context.Context, documents []model.DocumentID, format model.Format) ([]byte, string, error) {
	body, err := json.Marshal(&api.RenderRequest{
		Documents: documents,
		Format:    string(format),
	})
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	var buff bytes.Buffer

	header, err := c.request(ctx, "POST", "/render", nil, bytes.NewReader(body), &buff)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return buff.Bytes(), header.Get("Content-Type"), nil
}
