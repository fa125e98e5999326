package gorm

import (
	"context"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(fromUser(user)).Error; err != nil {
			return translateError(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	return s.findUser(ctx, "id = ?", string(userID))
}

// GetUserByEmail implements port.UserStore.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findUser(ctx, "email = ?", email)
}

// GetUserByHandle implements port.UserStore.
func (s *Store) GetUserByHandle(ctx context.Context, handle string) (*model.User, error) {
	return s.findUser(ctx, "handle = ?", handle)
}

func (s *Store) findUser(ctx context.Context, query string, args ...any) (*model.User, error) {
	var user User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, append([]any{query}, args...)...).Error; err != nil {
			return translateError(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toUser(&user), nil
}

// GetUsersByID implements port.UserStore.
func (s *Store) GetUsersByID(ctx context.Context, userIDs ...model.UserID) ([]*model.User, error) {
	if len(userIDs) == 0 {
		return []*model.User{}, nil
	}

	var users []*User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("id IN ?", toStrings(userIDs)).Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	users = sortByIDs(users, userIDs, func(u *User) string { return u.ID })

	wrapped := make([]*model.User, 0, len(users))
	for _, u := range users {
		wrapped = append(wrapped, toUser(u))
	}

	return wrapped, nil
}

// UpdateUserLastLogin implements port.UserStore.
func (s *Store) UpdateUserLastLogin(ctx context.Context, userID model.UserID, lastLogin time.Time) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&User{}).Where("id = ?", string(userID)).Update("last_login", lastLogin)
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryUsers implements port.UserStore.
func (s *Store) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]*model.User, error) {
	var users []*User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&User{})

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit)
		}

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		query = query.Order("created_at ASC")

		if err := query.Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]*model.User, 0, len(users))
	for _, u := range users {
		wrapped = append(wrapped, toUser(u))
	}

	return wrapped, nil
}
