package httpfs

import (
	"net/url"

	"github.com/bianlab/landscape/internal/content"
	"github.com/bianlab/landscape/internal/core/port"
)

func init() {
	content.RegisterSourceFactory("http", FromDSN)
	content.RegisterSourceFactory("https", FromDSN)
}

func FromDSN(dsn *url.URL) (port.ContentSource, error) {
	return New(dsn), nil
}
