package users

import (
	"github.com/bornholm/backlog/internal/command/common"
	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/backlog/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagLimit = "limit"
	flagPage  = "page"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "List registered users of the configured storage",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 50,
				Usage: "Maximum number of users to list",
			},
			&cli.IntFlag{
				Name:  flagPage,
				Value: 0,
				Usage: "Page of users to list, starting at 0",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			store, err := setup.GetStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not create store from config")
			}

			limit := ctx.Int(flagLimit)
			page := ctx.Int(flagPage)

			users, err := store.QueryUsers(ctx.Context, port.QueryUsersOptions{
				Limit: &limit,
				Page:  &page,
			})
			if err != nil {
				return errors.Wrap(err, "could not query users")
			}

			if err := common.WriteJSON(ctx.App.Writer, model.CleanAll[model.UserView](users)); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
