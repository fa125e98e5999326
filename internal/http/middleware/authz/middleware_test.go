package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/backlog/internal/core/model"
	httpCtx "github.com/bornholm/backlog/internal/http/context"
)

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	unauthorized := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	handler := Middleware(unauthorized, IsAuthenticated)(ok)

	type testCase struct {
		Name           string
		User           *model.User
		ExpectedStatus int
	}

	testCases := []testCase{
		{Name: "anonymous", User: nil, ExpectedStatus: http.StatusUnauthorized},
		{Name: "authenticated", User: model.NewUser(model.Name{First: "Ada"}, "ada12345", "ada@x.com", "hash"), ExpectedStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.User != nil {
				req = req.WithContext(httpCtx.SetUser(req.Context(), tc.User))
			}

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %v, got %v", e, g)
			}
		})
	}
}
