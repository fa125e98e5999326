package setup

import (
	"context"

	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/http/middleware/authn/session"
	"github.com/pkg/errors"
)

var getSessionAuthenticatorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Authenticator, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accounts, err := getAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authenticator := session.NewAuthenticator(sessionStore, accounts, session.WithSessionName(conf.HTTP.Session.Name))

	return authenticator, nil
})
