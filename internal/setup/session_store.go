package setup

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/bornholm/backlog/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionStoreCookie     = "cookie"
	sessionStoreFilesystem = "filesystem"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		slog.WarnContext(ctx, "no session key configured, using a random one: sessions will not survive a restart")

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	cookie := conf.HTTP.Session.Cookie

	options := &sessions.Options{
		Path:     cookie.Path,
		MaxAge:   int(cookie.MaxAge.Seconds()),
		HttpOnly: cookie.HTTPOnly,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	switch conf.HTTP.Session.Store {
	case sessionStoreFilesystem:
		if err := os.MkdirAll(conf.HTTP.Session.Dir, 0o700); err != nil {
			return nil, errors.Wrapf(err, "could not create session directory '%s'", conf.HTTP.Session.Dir)
		}

		sessionStore := sessions.NewFilesystemStore(conf.HTTP.Session.Dir, keyPairs...)
		sessionStore.MaxAge(options.MaxAge)
		sessionStore.Options = options

		return sessionStore, nil

	case sessionStoreCookie:
		sessionStore := sessions.NewCookieStore(keyPairs...)
		sessionStore.MaxAge(options.MaxAge)
		sessionStore.Options = options

		return sessionStore, nil

	default:
		return nil, errors.Errorf("unknown session store '%s'", conf.HTTP.Session.Store)
	}
})
