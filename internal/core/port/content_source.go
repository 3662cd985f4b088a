package port

import (
	"context"
	"io"
)

// ContentSource retrieves the raw text body stored at a location, e.g. a
// path below a content directory or a URL on a static server.
type ContentSource interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}
