package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/http/handler/api"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	store, err := NewContentStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content store from config")
	}

	pipeline, err := NewRenderPipelineFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create render pipeline from config")
	}

	vocabulary, err := NewVocabularyServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create vocabulary service from config")
	}

	dataModel, err := getDataModelServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create data model service from config")
	}

	return api.NewHandler(store, pipeline, vocabulary, dataModel), nil
}
