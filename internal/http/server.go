package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run serves requests until the context is canceled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.opts.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", s.opts.Address))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "could not shutdown http server gracefully", slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}

// Handler returns the root handler of the server, with its mounts and middlewares.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		trimmed := strings.TrimSuffix(prefix, "/")
		if trimmed == "" {
			mux.Handle(prefix, handler)
			continue
		}

		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	}

	var handler http.Handler = mux

	allowOrigin := NewOriginMatcher(s.opts.AllowedOrigins)

	handler = cors.New(cors.Options{
		AllowOriginFunc:  allowOrigin,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	}).Handler(handler)

	if baseURL := strings.TrimSuffix(s.opts.BaseURL, "/"); baseURL != "" {
		handler = http.StripPrefix(baseURL, handler)
	}

	handler = recovery(s.opts.RecoveryHandler)(handler)
	handler = sloghttp.New(slog.Default())(handler)

	return handler
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)

	return &Server{
		opts: opts,
	}
}
