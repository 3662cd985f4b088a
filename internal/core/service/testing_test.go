package service

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
)

// mapSource serves documents from an in-memory map and fails for any
// location listed in failing.
type mapSource struct {
	documents map[string]string
	failing   map[string]error
}

func (s *mapSource) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if err, ok := s.failing[location]; ok {
		return nil, errors.WithStack(err)
	}

	body, ok := s.documents[location]
	if !ok {
		return nil, errors.Errorf("no content at '%s'", location)
	}

	return io.NopCloser(strings.NewReader(body)), nil
}

// stubRenderer records every invocation and replies with a fixed result.
type stubRenderer struct {
	invocations int
	result      *model.RenderResult
	err         error
}

func (r *stubRenderer) Render(ctx context.Context, req *model.RenderRequest) (*model.RenderResult, error) {
	r.invocations++
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}
