package health

import (
	"github.com/bornholm/backlog/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	flags := common.WithClientFlags()

	return &cli.Command{
		Name:   "health",
		Usage:  "Query the health endpoint of a backlog server",
		Flags:  flags,
		Before: common.LoadConfigFile(flags),
		Action: func(ctx *cli.Context) error {
			backlogClient, err := common.GetClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create backlog client")
			}

			health, err := backlogClient.Health(ctx.Context)
			if err != nil {
				return errors.Wrap(err, "could not retrieve server health")
			}

			if err := common.WriteJSON(ctx.App.Writer, health); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
