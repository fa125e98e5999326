package port

import (
	"context"
	"errors"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrPasswordInvalid = errors.New("invalid password")
)

type TokenClaims struct {
	Email  string
	ID     model.UserID
	Handle string
}

// TokenIssuer signs and verifies authentication tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, claims TokenClaims) (string, time.Time, error)

	// Verify returns the claims of a valid token, or ErrInvalidToken
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordHasher hashes passwords with a per-call random salt.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)

	// Compare returns ErrPasswordInvalid if the password does not match the hash
	Compare(ctx context.Context, hash string, password string) error
}
