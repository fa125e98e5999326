package teams

import (
	"github.com/bornholm/backlog/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const paramSlug = "slug"

func Command() *cli.Command {
	flags := common.WithAccountFlags()

	showFlags := common.WithAccountFlags(&cli.StringFlag{
		Name:     paramSlug,
		Usage:    "Slug of the team to show",
		Required: true,
	})

	return &cli.Command{
		Name:  "teams",
		Usage: "Inspect the teams of an account on a backlog server",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the teams the account is a member of",
				Flags:  flags,
				Before: common.LoadConfigFile(flags),
				Action: func(ctx *cli.Context) error {
					backlogClient, err := common.GetAuthenticatedClient(ctx)
					if err != nil {
						return errors.WithStack(err)
					}

					teams, err := backlogClient.ListTeams(ctx.Context)
					if err != nil {
						return errors.Wrap(err, "could not list teams")
					}

					return common.WriteJSON(ctx.App.Writer, teams)
				},
			},
			{
				Name:   "show",
				Usage:  "Show a team with its members, features and backlog",
				Flags:  showFlags,
				Before: common.LoadConfigFile(showFlags),
				Action: func(ctx *cli.Context) error {
					backlogClient, err := common.GetAuthenticatedClient(ctx)
					if err != nil {
						return errors.WithStack(err)
					}

					team, err := backlogClient.GetTeam(ctx.Context, ctx.String(paramSlug))
					if err != nil {
						return errors.Wrap(err, "could not retrieve team")
					}

					return common.WriteJSON(ctx.App.Writer, team)
				},
			},
		},
	}
}
