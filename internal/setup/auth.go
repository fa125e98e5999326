package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/backlog/internal/adapter/bcrypt"
	"github.com/bornholm/backlog/internal/adapter/jwt"
	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

const tokenIssuer = "backlog"

var getTokenIssuerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TokenIssuer, error) {
	secret := []byte(conf.HTTP.Auth.Token.Secret)
	if len(secret) == 0 {
		random, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate token secret")
		}

		slog.WarnContext(ctx, "no token secret configured, using a random one: issued tokens will not survive a restart")

		secret = random
	}

	return jwt.NewIssuer(secret, conf.HTTP.Auth.Token.TTL, tokenIssuer), nil
})

var getPasswordHasherFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.PasswordHasher, error) {
	return bcrypt.NewHasher(conf.HTTP.Auth.Password.Cost), nil
})
