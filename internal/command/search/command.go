package search

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bianlab/landscape/internal/command/common"
)

const (
	flagQuery = "query"
	flagSize  = "size"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the vocabulary terms",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagQuery,
				Aliases:  []string{"q"},
				Usage:    "Text to search for",
				Required: true,
			},
			&cli.IntFlag{
				Name:  flagSize,
				Value: 20,
				Usage: "Maximum number of results",
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			landscapeClient, err := common.GetLandscapeClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create landscape client")
			}

			terms, err := landscapeClient.SearchVocabulary(ctx, cCtx.String(flagQuery), cCtx.Int(flagSize))
			if err != nil {
				return errors.Wrap(err, "could not search vocabulary")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "PATH\tVALUE")
			for _, term := range terms {
				fmt.Fprintf(w, "%s\t%s\n", term.Path, term.Text)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
