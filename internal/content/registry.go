// Package content resolves content sources from DSN-style URIs, e.g.
// "local://./content" or "https://example.net/bian".
package content

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/port"
)

var ErrSchemeNotRegistered = errors.New("scheme not registered")

var sourceFactories = make(map[string]SourceFactory, 0)

type SourceFactory func(url *url.URL) (port.ContentSource, error)

func RegisterSourceFactory(scheme string, factory SourceFactory) {
	sourceFactories[scheme] = factory
}

func New(dsn string) (port.ContentSource, error) {
	url, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	factory, exists := sourceFactories[url.Scheme]
	if !exists {
		return nil, errors.Wrapf(ErrSchemeNotRegistered, "no content source associated with scheme '%s'", url.Scheme)
	}

	source, err := factory(url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return source, nil
}
