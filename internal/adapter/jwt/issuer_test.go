package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

func TestIssuer(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer([]byte("secret"), time.Hour, "backlog")

	token, expiresAt, err := issuer.Issue(ctx, port.TokenClaims{
		Email:  "ada@x.com",
		ID:     "user-id",
		Handle: "ada_lovelace12345",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if expiresAt.Before(time.Now().Add(59 * time.Minute)) {
		t.Errorf("unexpected expiration date %v", expiresAt)
	}

	claims, err := issuer.Verify(ctx, token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "ada_lovelace12345", claims.Handle; e != g {
		t.Errorf("claims.Handle: expected %v, got %v", e, g)
	}

	type testCase struct {
		Name   string
		Issuer *Issuer
		Token  string
	}

	expired, _, err := NewIssuer([]byte("secret"), -time.Hour, "backlog").Issue(ctx, port.TokenClaims{ID: "user-id"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	testCases := []testCase{
		{Name: "garbage", Issuer: issuer, Token: "not-a-token"},
		{Name: "wrong secret", Issuer: NewIssuer([]byte("other"), time.Hour, "backlog"), Token: token},
		{Name: "wrong issuer", Issuer: NewIssuer([]byte("secret"), time.Hour, "other"), Token: token},
		{Name: "expired", Issuer: issuer, Token: expired},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := tc.Issuer.Verify(ctx, tc.Token); !errors.Is(err, port.ErrInvalidToken) {
				t.Errorf("err: expected %v, got %+v", port.ErrInvalidToken, err)
			}
		})
	}
}
