package common

import (
	"net/url"

	"github.com/bornholm/backlog/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramConfig   = "config"
	paramServer   = "server"
	paramEmail    = "email"
	paramPassword = "password"
)

var (
	flagConfig = &cli.StringFlag{
		Name:    paramConfig,
		EnvVars: []string{"BACKLOG_CLI_CONFIG"},
		Aliases: []string{"c"},
		Usage:   "YAML configuration file to read flag values from",
	}
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		EnvVars: []string{"BACKLOG_CLI_SERVER"},
		Value:   "http://localhost:3002",
		Usage:   "Backlog server base url",
	})
	flagEmail = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramEmail,
		EnvVars: []string{"BACKLOG_CLI_EMAIL"},
		Usage:   "Email of the account to login with",
	})
	flagPassword = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramPassword,
		EnvVars: []string{"BACKLOG_CLI_PASSWORD"},
		Usage:   "Password of the account to login with",
	})
)

// WithClientFlags prepends the flags needed to reach a backlog server.
func WithClientFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagConfig,
		flagServer,
	}, flags...)
}

// WithAccountFlags prepends the flags needed to open an authenticated session.
func WithAccountFlags(flags ...cli.Flag) []cli.Flag {
	return WithClientFlags(append([]cli.Flag{
		flagEmail,
		flagPassword,
	}, flags...)...)
}

// LoadConfigFile fills unset flags from the YAML file given with --config, if any.
func LoadConfigFile(flags []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if ctx.String(paramConfig) == "" {
			return nil
		}

		return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc(paramConfig))(ctx)
	}
}

func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}

// GetAuthenticatedClient returns a client with an opened session.
func GetAuthenticatedClient(ctx *cli.Context) (*client.Client, error) {
	email := ctx.String(paramEmail)
	if email == "" {
		return nil, errors.Errorf("missing --%s flag", paramEmail)
	}

	backlogClient, err := GetClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := backlogClient.Login(ctx.Context, email, ctx.String(paramPassword)); err != nil {
		return nil, errors.Wrap(err, "could not login")
	}

	return backlogClient, nil
}
