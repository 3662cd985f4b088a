package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/catalogue"
	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/core/service"
)

// NewContentStoreFromConfig loads the catalogue manifest and populates the
// store from the configured content source. Documents that cannot be
// fetched fall back to a placeholder, so the store always reflects the
// full catalogue.
var NewContentStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ContentStore, error) {
	source, err := getContentSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content source from config")
	}

	manifest, err := catalogue.Load(ctx, source, conf.Content.Catalogue)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load catalogue '%s'", conf.Content.Catalogue)
	}

	store := service.NewContentStore(source)

	if err := store.LoadAll(ctx, manifest.Documents); err != nil {
		return nil, errors.Wrap(err, "could not load catalogue documents")
	}

	return store, nil
})
