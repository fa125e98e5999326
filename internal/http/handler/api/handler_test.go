package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/adapter/bcrypt"
	gormAdapter "github.com/bornholm/backlog/internal/adapter/gorm"
	"github.com/bornholm/backlog/internal/adapter/jwt"
	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/service"
	httpServer "github.com/bornholm/backlog/internal/http"
	"github.com/bornholm/backlog/internal/http/middleware/authn"
	"github.com/bornholm/backlog/internal/http/middleware/authn/session"
	"github.com/bornholm/backlog/internal/http/middleware/ratelimit"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	cryptoBcrypt "golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T, funcs ...OptionFunc) *httptest.Server {
	t.Helper()

	db, err := gormAdapter.OpenDatabase(filepath.Join(t.TempDir(), "test.sqlite"), logger.Silent)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := gormAdapter.NewStore(db)

	accounts := service.NewAccountManager(store, bcrypt.NewHasher(cryptoBcrypt.MinCost), jwt.NewIssuer([]byte("secret"), time.Hour, "backlog"))
	teams := service.NewTeamManager(store)
	features := service.NewFeatureManager(store)

	sessionStore := sessions.NewCookieStore([]byte("01234567890123456789012345678901"))
	authenticator := session.NewAuthenticator(sessionStore, accounts)

	api := NewHandler(accounts, teams, features, authenticator, funcs...)
	authnMiddleware := authn.Middleware(HandleError, authenticator)

	server := httpServer.NewServer(
		httpServer.WithMount("/api/v1/", authnMiddleware(api)),
		httpServer.WithMount("/", http.HandlerFunc(HandleNotFound)),
	)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts
}

type testClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T, server *httptest.Server) *testClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &testClient{
		t:      t,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

func (c *testClient) do(method string, path string, body any, out any) int {
	c.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			c.t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	req, err := http.NewRequest(method, c.server.URL+path, &payload)
	if err != nil {
		c.t.Fatalf("%+v", errors.WithStack(err))
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			c.t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	return res.StatusCode
}

func (c *testClient) expectError(method string, path string, body any, status int, message string) {
	c.t.Helper()

	var res ErrorResponse
	if e, g := status, c.do(method, path, body, &res); e != g {
		c.t.Errorf("%s %s: expected status %v, got %v (%+v)", method, path, e, g, res)
	}

	if e, g := message, res.Message; e != g {
		c.t.Errorf("%s %s: expected message %q, got %q", method, path, e, g)
	}
}

func (c *testClient) registerAndLogin(first, last, email string) {
	c.t.Helper()

	register := map[string]any{
		"name":     map[string]string{"first": first, "last": last},
		"email":    email,
		"password": "longpass1",
	}

	if e, g := http.StatusOK, c.do(http.MethodPost, "/api/v1/register", register, nil); e != g {
		c.t.Fatalf("register: expected status %v, got %v", e, g)
	}

	login := map[string]any{"email": email, "password": "longpass1"}

	if e, g := http.StatusOK, c.do(http.MethodPost, "/api/v1/login", login, nil); e != g {
		c.t.Fatalf("login: expected status %v, got %v", e, g)
	}
}

func TestHandlerScenario(t *testing.T) {
	server := newTestServer(t)
	ada := newTestClient(t, server)

	var health HealthResponse
	if e, g := http.StatusOK, ada.do(http.MethodGet, "/api/v1/health", nil, &health); e != g {
		t.Fatalf("health: expected status %v, got %v", e, g)
	}

	if e, g := "OK", health.Message; e != g {
		t.Errorf("health.Message: expected %v, got %v", e, g)
	}

	register := map[string]any{
		"name":     map[string]string{"first": "Ada", "last": "Lovelace"},
		"email":    "ada@x.com",
		"password": "longpass1",
	}

	var success SuccessResponse
	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/register", register, &success); e != g {
		t.Fatalf("register: expected status %v, got %v", e, g)
	}

	if !success.Success {
		t.Errorf("register should report a success")
	}

	ada.expectError(http.MethodPost, "/api/v1/register", register, http.StatusBadRequest, "User already exists")

	ada.expectError(http.MethodPost, "/api/v1/register", map[string]any{
		"name":     map[string]string{"first": "Ada", "last": "Lovelace"},
		"email":    "other@x.com",
		"password": "short",
	}, http.StatusBadRequest, "Invalid Request")

	ada.expectError(http.MethodGet, "/api/v1/teams", nil, http.StatusUnauthorized, "Unauthorized")

	ada.expectError(http.MethodPost, "/api/v1/login", map[string]any{"email": "ada@x.com", "password": "wrongpass"}, http.StatusBadRequest, "Incorrect Combination")
	ada.expectError(http.MethodPost, "/api/v1/login", map[string]any{"email": "nobody@x.com", "password": "longpass1"}, http.StatusNotFound, "User does not exist")

	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/login", map[string]any{"email": "ada@x.com", "password": "longpass1"}, nil); e != g {
		t.Fatalf("login: expected status %v, got %v", e, g)
	}

	var team model.TeamView
	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/team", map[string]any{"slug": "core", "name": "Core Team"}, &team); e != g {
		t.Fatalf("create team: expected status %v, got %v", e, g)
	}

	if team.Owner == nil || team.Owner.Name.First != "Ada" {
		t.Fatalf("team.Owner: expected Ada, got %+v", team.Owner)
	}

	if e, g := 1, len(team.Members); e != g {
		t.Fatalf("len(team.Members): expected %v, got %v", e, g)
	}

	if e, g := team.Owner.Handle, team.Members[0].Handle; e != g {
		t.Errorf("team.Members[0].Handle: expected %v, got %v", e, g)
	}

	ada.expectError(http.MethodPost, "/api/v1/team", map[string]any{"slug": "core", "name": "Core Team"}, http.StatusBadRequest, "Team already exists")

	var story model.StoryView
	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/team/add-story", map[string]any{"slug": "core", "name": "Fix bug"}, &story); e != g {
		t.Fatalf("add story: expected status %v, got %v", e, g)
	}

	if e, g := model.StoryStatusGrooming, story.Status; e != g {
		t.Errorf("story.Status: expected %v, got %v", e, g)
	}

	if e, g := 0.0, story.Estimate; e != g {
		t.Errorf("story.Estimate: expected %v, got %v", e, g)
	}

	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/team/update-story", map[string]any{"slug": "core", "storyId": story.Handle, "status": "DEFINED", "estimate": 2}, &story); e != g {
		t.Fatalf("update story: expected status %v, got %v", e, g)
	}

	if e, g := model.StoryStatusDefined, story.Status; e != g {
		t.Errorf("story.Status: expected %v, got %v", e, g)
	}

	ada.expectError(http.MethodPost, "/api/v1/team/update-story", map[string]any{"slug": "core", "storyId": story.Handle, "status": "DONE"}, http.StatusBadRequest, "Invalid Request")

	// Grace cannot see the team until she is added to it
	grace := newTestClient(t, server)
	grace.registerAndLogin("Grace", "Hopper", "grace@x.com")

	grace.expectError(http.MethodGet, "/api/v1/team?slug=core", nil, http.StatusNotFound, "Team does not exist")

	var teams []model.TeamView
	if e, g := http.StatusOK, grace.do(http.MethodGet, "/api/v1/teams", nil, &teams); e != g {
		t.Fatalf("list teams: expected status %v, got %v", e, g)
	}

	if e, g := 0, len(teams); e != g {
		t.Errorf("len(teams): expected %v, got %v", e, g)
	}

	var feature model.FeatureView
	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/feature", map[string]any{"slug": "core", "name": "Login"}, &feature); e != g {
		t.Fatalf("create feature: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/feature/attach-story", map[string]any{"slug": "core", "featureId": feature.Handle, "storyId": story.Handle}, &feature); e != g {
		t.Fatalf("attach story: expected status %v, got %v", e, g)
	}

	if e, g := 1, len(feature.Stories); e != g {
		t.Errorf("len(feature.Stories): expected %v, got %v", e, g)
	}

	var features []model.FeatureView
	if e, g := http.StatusOK, ada.do(http.MethodGet, "/api/v1/features?slug=core", nil, &features); e != g {
		t.Fatalf("list features: expected status %v, got %v", e, g)
	}

	if e, g := 1, len(features); e != g {
		t.Errorf("len(features): expected %v, got %v", e, g)
	}

	if e, g := http.StatusOK, ada.do(http.MethodGet, "/api/v1/feature?slug=core&featureId="+feature.Handle, nil, &feature); e != g {
		t.Errorf("get feature: expected status %v, got %v", e, g)
	}

	ada.expectError(http.MethodGet, "/api/v1/feature?slug=core", nil, http.StatusBadRequest, "Invalid Request")

	// Grace joins the team, but only the owner can delete it
	var self model.TeamView
	if e, g := http.StatusOK, grace.do(http.MethodPost, "/api/v1/team", map[string]any{"slug": "grace", "name": "Grace Team"}, &self); e != g {
		t.Fatalf("create team: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/team/add-member", map[string]any{"slug": "core", "userId": self.Owner.Handle}, &team); e != g {
		t.Fatalf("add member: expected status %v, got %v", e, g)
	}

	if e, g := 2, len(team.Members); e != g {
		t.Errorf("len(team.Members): expected %v, got %v", e, g)
	}

	ada.expectError(http.MethodPost, "/api/v1/team/add-member", map[string]any{"slug": "core", "userId": self.Owner.Handle}, http.StatusNotFound, "User is already added to team")

	grace.expectError(http.MethodPost, "/api/v1/team/delete", map[string]any{"slug": "core"}, http.StatusMethodNotAllowed, "Not Allowed")

	if e, g := http.StatusOK, ada.do(http.MethodPost, "/api/v1/team/delete", map[string]any{"slug": "core"}, &success); e != g {
		t.Fatalf("delete team: expected status %v, got %v", e, g)
	}

	ada.expectError(http.MethodGet, "/api/v1/team?slug=core", nil, http.StatusNotFound, "Team does not exist")

	if e, g := http.StatusOK, ada.do(http.MethodGet, "/api/v1/logout", nil, &success); e != g {
		t.Fatalf("logout: expected status %v, got %v", e, g)
	}

	ada.expectError(http.MethodGet, "/api/v1/teams", nil, http.StatusUnauthorized, "Unauthorized")

	ada.expectError(http.MethodGet, "/api/v1/unknown", nil, http.StatusNotFound, "Route Not Found - /api/v1/unknown")
	ada.expectError(http.MethodGet, "/elsewhere?x=1", nil, http.StatusNotFound, "Route Not Found - /elsewhere?x=1")
}

func TestHandlerMaintenanceMode(t *testing.T) {
	server := newTestServer(t, WithMaintenanceMode(true))
	client := newTestClient(t, server)

	var res ErrorResponse
	if e, g := http.StatusServiceUnavailable, client.do(http.MethodGet, "/api/v1/health", nil, &res); e != g {
		t.Fatalf("health: expected status %v, got %v", e, g)
	}

	if e, g := service.KindServiceUnavailable, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}

	if e, g := "MAINTENANCE_MODE", res.Type; e != g {
		t.Errorf("res.Type: expected %v, got %v", e, g)
	}

	if e, g := "Maintenance in progress", res.Message; e != g {
		t.Errorf("res.Message: expected %v, got %v", e, g)
	}
}

func TestHandlerCredentialsRateLimit(t *testing.T) {
	server := newTestServer(t, WithCredentialsMiddlewares(
		ratelimit.Middleware(
			ratelimit.WithLimit(time.Hour, 1),
			ratelimit.WithOnLimited(http.HandlerFunc(HandleTooManyRequests)),
		),
	))
	client := newTestClient(t, server)

	login := map[string]any{"email": "nobody@x.com", "password": "longpass1"}

	client.expectError(http.MethodPost, "/api/v1/login", login, http.StatusNotFound, "User does not exist")

	client.expectError(http.MethodPost, "/api/v1/login", login, http.StatusTooManyRequests, "Too Many Requests")

	res, err := client.client.Post(server.URL+"/api/v1/register", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusTooManyRequests, res.StatusCode; e != g {
		t.Errorf("register: expected status %v, got %v", e, g)
	}

	if e, g := "application/json", res.Header.Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected %v, got %v", e, g)
	}

	if res.Header.Get("Retry-After") == "" {
		t.Errorf("Retry-After header should be set")
	}

	var limited ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&limited); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := service.KindTooManyRequests, limited.Code; e != g {
		t.Errorf("limited.Code: expected %v, got %v", e, g)
	}

	// Other routes are not limited
	for range 3 {
		if e, g := http.StatusOK, client.do(http.MethodGet, "/api/v1/health", nil, nil); e != g {
			t.Errorf("health: expected status %v, got %v", e, g)
		}
	}
}
