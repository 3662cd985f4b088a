package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/adapter/bleve"
	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/vocabulary"
)

var NewVocabularyServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*vocabulary.Service, error) {
	source, err := getContentSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content source from config")
	}

	index, err := bleve.NewIndex()
	if err != nil {
		return nil, errors.Wrap(err, "could not create vocabulary index")
	}

	service := vocabulary.NewService(source, conf.Content.Vocabulary, index)

	if err := service.Load(ctx); err != nil {
		return nil, errors.Wrapf(err, "could not load vocabulary '%s'", conf.Content.Vocabulary)
	}

	return service, nil
})
