package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/datamodel"
)

var getDataModelServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*datamodel.Service, error) {
	source, err := getContentSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content source from config")
	}

	return datamodel.NewService(source, conf.Content.DataModel), nil
})
