package cache

import (
	"context"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
)

// Store decorates a port.Store with an in-memory cache of users. Every other
// operation is delegated to the backend.
type Store struct {
	port.Store
	userCache *MultiIndexCache[*CacheableUser]
}

// CreateUser implements [port.UserStore].
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	defer s.userCache.Remove(getUserIDCacheKey(user.ID))

	return s.Store.CreateUser(ctx, user)
}

// GetUserByID implements [port.UserStore].
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	return s.getUser(getUserIDCacheKey(userID), func() (*model.User, error) {
		return s.Store.GetUserByID(ctx, userID)
	})
}

// GetUserByEmail implements [port.UserStore].
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(getUserEmailCacheKey(email), func() (*model.User, error) {
		return s.Store.GetUserByEmail(ctx, email)
	})
}

// GetUserByHandle implements [port.UserStore].
func (s *Store) GetUserByHandle(ctx context.Context, handle string) (*model.User, error) {
	return s.getUser(getUserHandleCacheKey(handle), func() (*model.User, error) {
		return s.Store.GetUserByHandle(ctx, handle)
	})
}

// GetUsersByID implements [port.UserStore].
func (s *Store) GetUsersByID(ctx context.Context, userIDs ...model.UserID) ([]*model.User, error) {
	users := make([]*model.User, len(userIDs))
	missing := make([]model.UserID, 0)

	for i, id := range userIDs {
		if cached, exists := s.userCache.Get(getUserIDCacheKey(id)); exists {
			users[i] = cached.Unwrap()
			continue
		}

		missing = append(missing, id)
	}

	if len(missing) > 0 {
		fetched, err := s.Store.GetUsersByID(ctx, missing...)
		if err != nil {
			return nil, err
		}

		byID := make(map[model.UserID]*model.User, len(fetched))
		for _, u := range fetched {
			s.userCache.Add(NewCacheableUser(u))
			byID[u.ID] = u
		}

		for i, id := range userIDs {
			if users[i] == nil {
				users[i] = byID[id]
			}
		}
	}

	found := make([]*model.User, 0, len(users))
	for _, u := range users {
		if u != nil {
			found = append(found, u)
		}
	}

	return found, nil
}

// UpdateUserLastLogin implements [port.UserStore].
func (s *Store) UpdateUserLastLogin(ctx context.Context, userID model.UserID, lastLogin time.Time) error {
	defer s.userCache.Remove(getUserIDCacheKey(userID))

	return s.Store.UpdateUserLastLogin(ctx, userID, lastLogin)
}

func (s *Store) getUser(key string, fetch func() (*model.User, error)) (*model.User, error) {
	if cached, exists := s.userCache.Get(key); exists {
		return cached.Unwrap(), nil
	}

	user, err := fetch()
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

func NewStore(backend port.Store, size int, ttl time.Duration) *Store {
	return &Store{
		Store:     backend,
		userCache: NewMultiIndexCache[*CacheableUser](size, ttl),
	}
}

var _ port.Store = &Store{}
