package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

type countingStore struct {
	port.Store
	users map[model.UserID]*model.User
	calls int
}

func (s *countingStore) GetUserByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	s.calls++
	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (s *countingStore) GetUsersByID(ctx context.Context, userIDs ...model.UserID) ([]*model.User, error) {
	s.calls++
	users := make([]*model.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user, exists := s.users[id]; exists {
			clone := *user
			users = append(users, &clone)
		}
	}
	return users, nil
}

func (s *countingStore) UpdateUserLastLogin(ctx context.Context, userID model.UserID, lastLogin time.Time) error {
	s.users[userID].LastLogin = &lastLogin
	return nil
}

func TestStoreCachesUsers(t *testing.T) {
	ada := model.NewUser(model.Name{First: "Ada", Last: "Lovelace"}, "ada_lovelace12345", "ada@x.com", "hash")
	grace := model.NewUser(model.Name{First: "Grace", Last: "Hopper"}, "grace_hopper12345", "grace@x.com", "hash")

	backend := &countingStore{
		users: map[model.UserID]*model.User{ada.ID: ada, grace.ID: grace},
	}

	store := NewStore(backend, 10, time.Minute)
	ctx := context.Background()

	for range 3 {
		user, err := store.GetUserByID(ctx, ada.ID)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := ada.Handle, user.Handle; e != g {
			t.Errorf("user.Handle: expected %v, got %v", e, g)
		}
	}

	if e, g := 1, backend.calls; e != g {
		t.Errorf("backend.calls: expected %v, got %v", e, g)
	}

	users, err := store.GetUsersByID(ctx, grace.ID, ada.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(users); e != g {
		t.Fatalf("len(users): expected %v, got %v", e, g)
	}

	if e, g := grace.ID, users[0].ID; e != g {
		t.Errorf("users[0].ID: expected %v, got %v", e, g)
	}

	// Only grace should have been fetched
	if e, g := 2, backend.calls; e != g {
		t.Errorf("backend.calls: expected %v, got %v", e, g)
	}

	if err := store.UpdateUserLastLogin(ctx, ada.ID, time.Now()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	user, err := store.GetUserByID(ctx, ada.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user.LastLogin == nil {
		t.Errorf("user.LastLogin should have been refreshed")
	}

	if e, g := 3, backend.calls; e != g {
		t.Errorf("backend.calls: expected %v, got %v", e, g)
	}

	if _, err := store.GetUserByID(ctx, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected %v, got %+v", port.ErrNotFound, err)
	}
}
