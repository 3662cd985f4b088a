package setup

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/http"
	"github.com/bianlab/landscape/internal/http/handler/health"
	"github.com/bianlab/landscape/internal/http/handler/metrics"
	"github.com/bianlab/landscape/internal/http/handler/webui"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	store, err := NewContentStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create content store from config")
	}

	pipeline, err := NewRenderPipelineFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create render pipeline from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/api/v1/", api),
		http.WithMount("/health", health.NewHandler(store, pipeline)),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", webui.NewHandler()),
	}

	server := http.NewServer(options...)

	return server, nil
}
