package render

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bianlab/landscape/internal/command/common"
	"github.com/bianlab/landscape/internal/core/model"
)

const (
	flagDocument = "document"
	flagFormat   = "format"
	flagOutput   = "output"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a selection of diagrams to an image file",
		Flags: common.WithCommonFlags(
			&cli.StringSliceFlag{
				Name:     flagDocument,
				Aliases:  []string{"d"},
				Usage:    "Diagram ID(s) to render, in selection order",
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"f"},
				Value:   "svg",
				Usage:   "Output format ('svg' or 'png')",
			},
			&cli.StringFlag{
				Name:     flagOutput,
				Aliases:  []string{"o"},
				Usage:    "Output file (use '-' for stdout)",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			format, err := model.ParseFormat(cCtx.String(flagFormat))
			if err != nil {
				return errors.WithStack(err)
			}

			landscapeClient, err := common.GetLandscapeClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create landscape client")
			}

			documents := make([]model.DocumentID, 0)
			for _, id := range cCtx.StringSlice(flagDocument) {
				documents = append(documents, model.DocumentID(id))
			}

			payload, contentType, err := landscapeClient.Render(ctx, documents, format)
			if err != nil {
				return errors.Wrap(err, "could not render selection")
			}

			output := cCtx.String(flagOutput)
			if output == "-" {
				if _, err := os.Stdout.Write(payload); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			if err := os.WriteFile(output, payload, 0o644); err != nil {
				return errors.Wrapf(err, "could not write output file '%s'", output)
			}

			slog.InfoContext(ctx, "render completed",
				slog.String("output", output),
				slog.String("content_type", contentType),
				slog.Int("size", len(payload)),
			)

			return nil
		},
	}
}
