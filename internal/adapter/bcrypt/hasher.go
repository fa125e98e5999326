package bcrypt

import (
	"context"

	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	cost int
}

// Hash implements [port.PasswordHasher].
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(hash), nil
}

// Compare implements [port.PasswordHasher].
func (h *Hasher) Compare(ctx context.Context, hash string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errors.WithStack(port.ErrPasswordInvalid)
		}

		return errors.WithStack(err)
	}

	return nil
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

var _ port.PasswordHasher = &Hasher{}
