package api

import (
	"net/http"
	"time"

	"github.com/bornholm/backlog/internal/core/service"
	"github.com/bornholm/backlog/internal/http/middleware/authz"
	"github.com/go-playground/validator/v10"
)

// SessionTokenStore keeps the authentication token of a client between requests.
type SessionTokenStore interface {
	StoreToken(w http.ResponseWriter, r *http.Request, token string) error
	ClearToken(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	accounts *service.AccountManager
	teams    *service.TeamManager
	features *service.FeatureManager
	sessions SessionTokenStore

	validate        *validator.Validate
	maintenanceMode bool
	startedAt       time.Time

	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(accounts *service.AccountManager, teams *service.TeamManager, features *service.FeatureManager, sessions SessionTokenStore, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		accounts:        accounts,
		teams:           teams,
		features:        features,
		sessions:        sessions,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		maintenanceMode: opts.MaintenanceMode,
		startedAt:       opts.StartedAt,
		mux:             &http.ServeMux{},
	}

	assertUser := authz.Middleware(http.HandlerFunc(handleUnauthorized), authz.IsAuthenticated)

	h.mux.HandleFunc("GET /health", h.handleHealth)

	withCredentials := func(next http.Handler) http.Handler {
		for i := len(opts.CredentialsMiddlewares) - 1; i >= 0; i-- {
			next = opts.CredentialsMiddlewares[i](next)
		}
		return next
	}

	h.mux.Handle("POST /register", withCredentials(http.HandlerFunc(h.handleRegister)))
	h.mux.Handle("POST /login", withCredentials(http.HandlerFunc(h.handleLogin)))
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	h.mux.Handle("POST /team", assertUser(http.HandlerFunc(h.handleCreateTeam)))
	h.mux.Handle("GET /team", assertUser(http.HandlerFunc(h.handleGetTeam)))
	h.mux.Handle("GET /teams", assertUser(http.HandlerFunc(h.handleListTeams)))
	h.mux.Handle("POST /team/delete", assertUser(http.HandlerFunc(h.handleDeleteTeam)))
	h.mux.Handle("POST /team/change-owner", assertUser(http.HandlerFunc(h.handleChangeOwner)))
	h.mux.Handle("POST /team/add-member", assertUser(http.HandlerFunc(h.handleAddMember)))

	h.mux.Handle("POST /team/add-story", assertUser(http.HandlerFunc(h.handleAddStory)))
	h.mux.Handle("POST /team/delete-story", assertUser(http.HandlerFunc(h.handleDeleteStory)))
	h.mux.Handle("POST /team/update-story", assertUser(http.HandlerFunc(h.handleUpdateStory)))

	h.mux.Handle("POST /feature", assertUser(http.HandlerFunc(h.handleCreateFeature)))
	h.mux.Handle("GET /feature", assertUser(http.HandlerFunc(h.handleGetFeature)))
	h.mux.Handle("GET /features", assertUser(http.HandlerFunc(h.handleListFeatures)))
	h.mux.Handle("DELETE /feature", assertUser(http.HandlerFunc(h.handleDeleteFeature)))
	h.mux.Handle("POST /feature/attach-story", assertUser(http.HandlerFunc(h.handleAttachStory)))

	h.mux.HandleFunc("/", HandleNotFound)

	return h
}

var _ http.Handler = &Handler{}
