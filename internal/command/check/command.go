package check

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bianlab/landscape/internal/command/common"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report the server status and renderer prerequisites",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			landscapeClient, err := common.GetLandscapeClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create landscape client")
			}

			status, err := landscapeClient.Health(ctx)
			if err != nil {
				return errors.Wrap(err, "could not query server status")
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if err := encoder.Encode(status); err != nil {
				return errors.WithStack(err)
			}

			if status.Status != "ok" {
				return errors.Errorf("server reported status '%s'", status.Status)
			}

			return nil
		},
	}
}
