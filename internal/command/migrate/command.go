package migrate

import (
	"log/slog"

	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema of the configured storage",
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			if err := setup.MigrateFromConfig(ctx.Context, conf); err != nil {
				return errors.Wrap(err, "could not migrate database")
			}

			slog.InfoContext(ctx.Context, "database migrated", slog.String("dsn", conf.Storage.Database.DSN))

			return nil
		},
	}
}
