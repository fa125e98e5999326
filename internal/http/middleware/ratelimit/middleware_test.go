package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Middleware(WithLimit(time.Hour, 2), WithTrustHeaders(true))(ok)

	do := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", client+", 10.0.0.1")
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res
	}

	for i := range 2 {
		if e, g := http.StatusNoContent, do("192.0.2.1").Code; e != g {
			t.Errorf("request #%d: expected status %v, got %v", i, e, g)
		}
	}

	res := do("192.0.2.1")
	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Errorf("Retry-After header should be set")
	}

	// Other clients have their own bucket
	if e, g := http.StatusNoContent, do("192.0.2.2").Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}
}
