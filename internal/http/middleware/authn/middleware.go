package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	httpCtx "github.com/bornholm/backlog/internal/http/context"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	// Authenticate returns the user making the request, or nil if the
	// authenticator could not identify anyone
	Authenticate(w http.ResponseWriter, r *http.Request) (*model.User, error)
}

// Middleware identifies the user of each request with the first authenticator
// recognizing it. Unidentified requests are forwarded anonymously, access
// control is left to the authz middleware.
func Middleware(onError func(w http.ResponseWriter, r *http.Request, err error), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
					onError(w, r, err)
					return
				}

				if user == nil {
					continue
				}

				ctx := r.Context()
				ctx = httpCtx.SetUser(ctx, user)
				ctx = slogx.WithAttrs(ctx, slog.String("user", string(user.ID)))

				r = r.WithContext(ctx)

				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}
