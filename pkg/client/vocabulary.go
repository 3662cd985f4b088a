package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/http/handler/api"
)

func (c *Client) SearchVocabulary(ctx context.Context, query string, size int) ([]model.VocabularyTerm, error) {
	values := url.Values{}
	values.Set("query", query)

	if size > 0 {
		values.Set("size", strconv.Itoa(size))
	}

	var res api.SearchVocabularyResponse
	if err := c.jsonRequest(ctx, "GET", "/vocabulary/search", values, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Terms, nil
}
