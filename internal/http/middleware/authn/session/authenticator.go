package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/service"
	"github.com/bornholm/backlog/internal/http/middleware/authn"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const keyAuthToken = "authToken"

var errSessionNotFound = errors.New("session not found")

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// Authenticator identifies users with the authentication token stored in
// their session.
type Authenticator struct {
	sessionStore sessions.Store
	sessionName  string
	tokens       TokenAuthenticator
}

// Authenticate implements [authn.Authenticator].
func (a *Authenticator) Authenticate(w http.ResponseWriter, r *http.Request) (*model.User, error) {
	ctx := r.Context()

	token, err := a.retrieveSessionToken(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	user, err := a.tokens.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			slog.DebugContext(ctx, "ignoring invalid session token", slog.String("error", err.Error()))
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

// StoreToken saves the given authentication token in a fresh session,
// replacing the session of the request.
func (a *Authenticator) StoreToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess, err := a.sessionStore.Get(r, a.sessionName)
	if err != nil {
		// Undecodable cookies are replaced by a fresh session
		sess, err = a.sessionStore.New(r, a.sessionName)
		if sess == nil {
			return errors.WithStack(err)
		}
	}

	// Never reuse an identifier issued before the user was authenticated
	sess.ID = ""
	sess.IsNew = true
	sess.Values = map[any]any{
		keyAuthToken: token,
	}

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ClearToken invalidates the session of the request.
func (a *Authenticator) ClearToken(w http.ResponseWriter, r *http.Request) error {
	sess, err := a.sessionStore.Get(r, a.sessionName)
	if sess == nil {
		return errors.WithStack(err)
	}

	delete(sess.Values, keyAuthToken)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (a *Authenticator) retrieveSessionToken(r *http.Request) (string, error) {
	sess, err := a.sessionStore.Get(r, a.sessionName)
	if err != nil {
		slog.DebugContext(r.Context(), "could not decode session", slog.String("error", err.Error()))
		return "", errors.WithStack(errSessionNotFound)
	}

	token, ok := sess.Values[keyAuthToken].(string)
	if !ok || token == "" {
		return "", errors.WithStack(errSessionNotFound)
	}

	return token, nil
}

func NewAuthenticator(sessionStore sessions.Store, tokens TokenAuthenticator, funcs ...OptionFunc) *Authenticator {
	opts := NewOptions(funcs...)

	return &Authenticator{
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		tokens:       tokens,
	}
}

var _ authn.Authenticator = &Authenticator{}
