package bcrypt

import (
	"context"
	"testing"

	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	ctx := context.Background()
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash(ctx, "longpass1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := hasher.Hash(ctx, "longpass1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first == second {
		t.Errorf("hashes should be salted")
	}

	if err := hasher.Compare(ctx, first, "longpass1"); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}

	if err := hasher.Compare(ctx, first, "wrongpass"); !errors.Is(err, port.ErrPasswordInvalid) {
		t.Errorf("err: expected %v, got %+v", port.ErrPasswordInvalid, err)
	}
}
