package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/backlog/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type AccountManagerOptions struct {
	MaxAttempts      int
	HandleSuffixSize int
}

type AccountManagerOptionFunc func(opts *AccountManagerOptions)

func WithAccountManagerMaxAttempts(maxAttempts int) AccountManagerOptionFunc {
	return func(opts *AccountManagerOptions) {
		opts.MaxAttempts = maxAttempts
	}
}

func WithAccountManagerHandleSuffixSize(size int) AccountManagerOptionFunc {
	return func(opts *AccountManagerOptions) {
		opts.HandleSuffixSize = size
	}
}

func NewAccountManagerOptions(funcs ...AccountManagerOptionFunc) *AccountManagerOptions {
	opts := &AccountManagerOptions{
		MaxAttempts:      DefaultMaxAttempts,
		HandleSuffixSize: UserHandleSuffixLen,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type AccountManager struct {
	store  port.UserStore
	hasher port.PasswordHasher
	tokens port.TokenIssuer

	maxAttempts      int
	handleSuffixSize int
}

type Registration struct {
	Name     model.Name
	Email    string
	Password string
}

// Register creates a new user account. The email is compared case-insensitively.
func (m *AccountManager) Register(ctx context.Context, registration Registration) (*model.User, error) {
	email := normalizeEmail(registration.Email)
	if email == "" || registration.Password == "" || len(registration.Name.Parts()) == 0 {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("email", email))

	if _, err := m.store.GetUserByEmail(ctx, email); err == nil {
		return nil, errors.WithStack(ErrUserAlreadyExists)
	} else if !errors.Is(err, port.ErrNotFound) {
		return nil, errors.WithStack(err)
	}

	passwordHash, err := m.hasher.Hash(ctx, registration.Password)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	var user *model.User

	_, err = insertWithUniqueID(
		ctx,
		UserHandle(registration.Name, m.handleSuffixSize),
		existsBy(m.store.GetUserByHandle),
		m.maxAttempts,
		func(ctx context.Context, handle string) error {
			user = model.NewUser(registration.Name, handle, email, passwordHash)

			err := m.store.CreateUser(ctx, user)
			if !errors.Is(err, port.ErrAlreadyExists) {
				return errors.WithStack(err)
			}

			// The conflict may come from a concurrent registration with the same email
			if _, lookupErr := m.store.GetUserByEmail(ctx, email); lookupErr == nil {
				return errors.WithStack(ErrUserAlreadyExists)
			}

			return errors.WithStack(err)
		},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalRegistrations.Inc()

	slog.InfoContext(ctx, "user registered", slog.String("userID", string(user.ID)), slog.String("handle", user.Handle))

	return user, nil
}

// Login checks the given credentials and issues an authentication token.
func (m *AccountManager) Login(ctx context.Context, email string, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	ctx = slogx.WithAttrs(ctx, slog.String("email", email))

	user, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			metrics.TotalLogins.With(loginResult(metrics.ResultRejected)).Inc()
			return nil, "", errors.WithStack(ErrUserNotFound)
		}

		return nil, "", errors.WithStack(err)
	}

	if err := m.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		if errors.Is(err, port.ErrPasswordInvalid) {
			metrics.TotalLogins.With(loginResult(metrics.ResultRejected)).Inc()
			return nil, "", errors.WithStack(ErrIncorrectCombination)
		}

		return nil, "", errors.WithStack(err)
	}

	now := time.Now()

	if err := m.store.UpdateUserLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", errors.WithStack(err)
	}

	user.LastLogin = &now

	token, _, err := m.tokens.Issue(ctx, port.TokenClaims{
		Email:  user.Email,
		ID:     user.ID,
		Handle: user.Handle,
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "could not issue token")
	}

	metrics.TotalLogins.With(loginResult(metrics.ResultSuccess)).Inc()

	slog.DebugContext(ctx, "user logged in", slog.String("userID", string(user.ID)))

	return user, token, nil
}

// Authenticate resolves the user identified by the given token.
func (m *AccountManager) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := m.tokens.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, port.ErrInvalidToken) {
			return nil, errors.WithStack(ErrUnauthorized)
		}

		return nil, errors.WithStack(err)
	}

	user, err := m.store.GetUserByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrUnauthorized)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func loginResult(result string) map[string]string {
	return map[string]string{metrics.LabelResult: result}
}

func NewAccountManager(store port.UserStore, hasher port.PasswordHasher, tokens port.TokenIssuer, funcs ...AccountManagerOptionFunc) *AccountManager {
	opts := NewAccountManagerOptions(funcs...)

	return &AccountManager{
		store:            store,
		hasher:           hasher,
		tokens:           tokens,
		maxAttempts:      opts.MaxAttempts,
		handleSuffixSize: opts.HandleSuffixSize,
	}
}
