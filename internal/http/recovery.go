package http

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// recovery logs panics raised by the wrapped handler and answers with the
// given fallback handler instead of dropping the connection.
func recovery(fallback http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				err, ok := recovered.(error)
				if !ok {
					err = errors.Errorf("%v", recovered)
				}

				slog.ErrorContext(r.Context(), "recovered from panic", slogx.Error(errors.WithStack(err)))

				fallback.ServeHTTP(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
