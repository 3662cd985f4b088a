package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/content"
	"github.com/bianlab/landscape/internal/core/port"
)

var getContentSourceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ContentSource, error) {
	source, err := content.New(conf.Content.Source.String())
	if err != nil {
		return nil, errors.Wrapf(err, "could not create content source for uri '%s'", conf.Content.Source)
	}

	return source, nil
})
