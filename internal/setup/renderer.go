package setup

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/core/port"
)

var getRendererFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Renderer, error) {
	dsn, err := rendererDSN(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	renderer, err := Renderer.From(dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create renderer for uri '%s'", dsn)
	}

	return renderer, nil
})

// rendererDSN folds the renderer settings into the backend URI as query
// parameters, so a fully specified URI still takes precedence.
func rendererDSN(conf *config.Config) (string, error) {
	u, err := url.Parse(conf.Renderer.URI.String())
	if err != nil {
		return "", errors.Wrapf(err, "could not parse renderer uri '%s'", conf.Renderer.URI)
	}

	query := u.Query()

	if conf.Renderer.JavaBin != "" && !query.Has("java") {
		query.Set("java", conf.Renderer.JavaBin)
	}

	if conf.Renderer.GraphvizDot != "" && !query.Has("dot") {
		query.Set("dot", conf.Renderer.GraphvizDot)
	}

	if conf.Renderer.Timeout > 0 && !query.Has("timeout") {
		query.Set("timeout", conf.Renderer.Timeout.String())
	}

	u.RawQuery = query.Encode()

	return u.String(), nil
}
