package client

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/http/handler/api"
)

func (c *Client) ListDiagrams(ctx context.Context) ([]*api.Diagram, error) {
	var res api.ListDiagramsResponse
	if err := c.jsonRequest(ctx, "GET", "/diagrams", nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Diagrams, nil
}

func (c *Client) GetDiagram(ctx context.Context, id model.DocumentID) (*api.GetDiagramResponse, error) {
	var res api.GetDiagramResponse
	if err := c.jsonRequest(ctx, "GET", fmt.Sprintf("/diagrams/%s", id), nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
