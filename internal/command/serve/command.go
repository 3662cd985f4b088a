package serve

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bianlab/landscape/internal/config"
	"github.com/bianlab/landscape/internal/setup"

	// Adapters
	_ "github.com/bianlab/landscape/internal/adapter/plantuml"
	_ "github.com/bianlab/landscape/internal/content/source/httpfs"
	_ "github.com/bianlab/landscape/internal/content/source/localfs"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the landscape server",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			server, err := setup.NewHTTPServerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup http server")
			}

			slog.InfoContext(ctx, "starting server", slog.Any("address", conf.HTTP.Address))

			if err := server.Run(ctx); err != nil {
				return errors.Wrap(err, "could not run server")
			}

			return nil
		},
	}
}
