package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/bornholm/backlog/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	accounts, err := getAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	teams, err := getTeamManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	features, err := getFeatureManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := getSessionAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	options := []api.OptionFunc{
		api.WithMaintenanceMode(conf.MaintenanceMode),
	}

	if rateLimit := conf.HTTP.RateLimit; rateLimit.Enabled {
		options = append(options, api.WithCredentialsMiddlewares(
			ratelimit.Middleware(
				ratelimit.WithTrustHeaders(rateLimit.TrustHeaders),
				ratelimit.WithLimit(rateLimit.Interval, rateLimit.Burst),
				ratelimit.WithCache(rateLimit.CacheSize, rateLimit.TTL),
				ratelimit.WithOnLimited(http.HandlerFunc(api.HandleTooManyRequests)),
			),
		))
	}

	handler := api.NewHandler(accounts, teams, features, sessions, options...)

	return handler, nil
}
