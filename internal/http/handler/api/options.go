package api

import (
	"net/http"
	"time"
)

type Options struct {
	MaintenanceMode bool
	StartedAt       time.Time

	// CredentialsMiddlewares wrap the routes receiving user credentials
	CredentialsMiddlewares []func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		MaintenanceMode: false,
		StartedAt:       time.Now(),

		CredentialsMiddlewares: make([]func(http.Handler) http.Handler, 0),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithMaintenanceMode makes the health endpoint report the service as unavailable.
func WithMaintenanceMode(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.MaintenanceMode = enabled
	}
}

func WithStartedAt(startedAt time.Time) OptionFunc {
	return func(opts *Options) {
		opts.StartedAt = startedAt
	}
}

// WithCredentialsMiddlewares wraps the login and registration routes, ie with a rate limiter.
func WithCredentialsMiddlewares(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.CredentialsMiddlewares = append(opts.CredentialsMiddlewares, middlewares...)
	}
}
