package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/backlog/internal/crypto"
	"github.com/bornholm/backlog/internal/metrics"
	"github.com/pkg/errors"
)

var ErrIdentifierExhausted = errors.New("could not generate a unique identifier")

const (
	DefaultMaxAttempts  = 10
	HandleLength        = 10
	UserHandleSuffixLen = 5
)

// IdentifierGenerator returns a new candidate identifier on each call.
type IdentifierGenerator func() (string, error)

// IdentifierCheck reports whether the given identifier is already taken.
type IdentifierCheck func(ctx context.Context, candidate string) (bool, error)

// CreateUniqueID draws candidates until one is not taken, giving up with
// ErrIdentifierExhausted after maxAttempts draws.
func CreateUniqueID(ctx context.Context, generate IdentifierGenerator, exists IdentifierCheck, maxAttempts int) (string, error) {
	return insertWithUniqueID(ctx, generate, exists, maxAttempts, nil)
}

// insertWithUniqueID behaves like CreateUniqueID, then calls insert with the candidate.
// An insert failing with port.ErrAlreadyExists consumes an attempt and draws again.
func insertWithUniqueID(ctx context.Context, generate IdentifierGenerator, exists IdentifierCheck, maxAttempts int, insert func(ctx context.Context, candidate string) error) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", errors.WithStack(err)
		}

		candidate, err := generate()
		if err != nil {
			return "", errors.Wrap(err, "could not generate identifier")
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrapf(err, "could not check identifier '%s'", candidate)
		}

		if !taken && insert != nil {
			err := insert(ctx, candidate)
			if errors.Is(err, port.ErrAlreadyExists) {
				taken = true
			} else if err != nil {
				return "", errors.WithStack(err)
			}
		}

		if !taken {
			return candidate, nil
		}

		metrics.IdentifierCollisions.Inc()

		slog.DebugContext(ctx, "identifier already taken", slog.String("candidate", candidate), slog.Int("attempt", attempt))
	}

	slog.ErrorContext(ctx, "identifier generation exhausted", slog.Int("maxAttempts", maxAttempts))

	return "", errors.WithStack(ErrIdentifierExhausted)
}

// RandomHandle generates alphanumeric identifiers of the given length.
func RandomHandle(length int) IdentifierGenerator {
	return func() (string, error) {
		handle, err := crypto.RandomString(length)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return handle, nil
	}
}

// UserHandle generates identifiers made of the lowercased name of the user
// followed by a random suffix, ie "ada_lovelaceX3kP9".
func UserHandle(name model.Name, suffixLength int) IdentifierGenerator {
	prefix := strings.ToLower(strings.Join(name.Parts(), "_"))

	return func() (string, error) {
		suffix, err := crypto.RandomString(suffixLength)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return prefix + suffix, nil
	}
}

func existsBy[T any](lookup func(ctx context.Context, handle string) (T, error)) IdentifierCheck {
	return func(ctx context.Context, candidate string) (bool, error) {
		if _, err := lookup(ctx, candidate); err != nil {
			if errors.Is(err, port.ErrNotFound) {
				return false, nil
			}

			return false, errors.WithStack(err)
		}

		return true, nil
	}
}
