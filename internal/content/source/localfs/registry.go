package localfs

import (
	"net/url"
	"strings"

	"github.com/bianlab/landscape/internal/content"
	"github.com/bianlab/landscape/internal/core/port"
)

func init() {
	content.RegisterSourceFactory("local", FromDSN)
}

func FromDSN(dsn *url.URL) (port.ContentSource, error) {
	basePath := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")
	return New(basePath)
}
