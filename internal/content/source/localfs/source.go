package localfs

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bianlab/landscape/internal/core/port"
)

// Source serves content from a directory on the local filesystem.
type Source struct {
	fs afero.Fs
}

// Fetch implements port.ContentSource.
func (s *Source) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	f, err := s.fs.Open(location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

func New(basePath string) (*Source, error) {
	if _, err := os.Stat(basePath); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Source{
		fs: afero.NewBasePathFs(afero.NewOsFs(), basePath),
	}, nil
}

// NewWithFs creates a source backed by an arbitrary filesystem, e.g. an
// in-memory one for tests.
func NewWithFs(fs afero.Fs) *Source {
	return &Source{fs: fs}
}

var _ port.ContentSource = &Source{}
