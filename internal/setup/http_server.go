package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/backlog/internal/config"
	httpServer "github.com/bornholm/backlog/internal/http"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/bornholm/backlog/internal/http/handler/metrics"
	"github.com/bornholm/backlog/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	apiHandler, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	authenticator, err := getSessionAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session authenticator from config")
	}

	authnMiddleware := authn.Middleware(api.HandleError, authenticator)

	allowedOrigins := append([]string{}, conf.HTTP.CORS.AllowedOrigins...)
	if !conf.Environment.IsProduction() {
		allowedOrigins = append(allowedOrigins, conf.HTTP.CORS.LocalOrigins...)
	}

	slog.DebugContext(ctx, "cors allowed origins", slog.Any("origins", allowedOrigins))

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithBaseURL(conf.HTTP.BaseURL),
		httpServer.WithAllowedOrigins(allowedOrigins...),
		httpServer.WithMount("/api/v1/", authnMiddleware(apiHandler)),
		httpServer.WithMount("/", http.HandlerFunc(api.HandleNotFound)),
		httpServer.WithRecoveryHandler(http.HandlerFunc(api.HandleInternalError)),
	}

	if conf.Metrics.Enabled {
		options = append(options, httpServer.WithMount("/metrics", metrics.NewHandler()))
	}

	server := httpServer.NewServer(options...)

	return server, nil
}
