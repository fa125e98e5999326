package port

import (
	"context"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

type UserStore interface {
	// CreateUser inserts a new user, or returns ErrAlreadyExists if its email
	// or handle is already taken
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (*model.User, error)

	// GetUserByEmail finds a user by its email, or returns ErrNotFound if not found
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByHandle finds a user by its application identifier, or returns ErrNotFound if not found
	GetUserByHandle(ctx context.Context, handle string) (*model.User, error)

	// GetUsersByID returns the known users matching the given IDs, preserving their order
	GetUsersByID(ctx context.Context, userIDs ...model.UserID) ([]*model.User, error)

	// UpdateUserLastLogin records the last successful login of a user
	UpdateUserLastLogin(ctx context.Context, userID model.UserID, lastLogin time.Time) error

	// QueryUsers lists users, ordered by creation date
	QueryUsers(ctx context.Context, opts QueryUsersOptions) ([]*model.User, error)
}

type QueryUsersOptions struct {
	Page  *int
	Limit *int
}
