package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/core/service"
)

var NewRenderPipelineFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.RenderPipeline, error) {
	store, err := NewContentStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content store from config")
	}

	renderer, err := getRendererFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create renderer from config")
	}

	funcs := []service.RenderPipelineOptionFunc{}

	if checker, ok := renderer.(port.ReadinessChecker); ok {
		funcs = append(funcs, service.WithRenderPipelineReadinessChecker(checker))
	}

	if conf.Renderer.Cache.Enabled {
		funcs = append(funcs, service.WithRenderPipelineCacheSize(conf.Renderer.Cache.Size))
	}

	return service.NewRenderPipeline(store, renderer, funcs...), nil
})
