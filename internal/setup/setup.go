package setup

import (
	"context"
	"sync"

	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/crypto"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a factory: the first successful result is
// returned to every later caller.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mutex   sync.Mutex
		created bool
		value   T
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if created {
			return value, nil
		}

		v, err := factory(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		value = v
		created = true

		return value, nil
	}
}

func getRandomBytes(n int) ([]byte, error) {
	data, err := crypto.RandomBytes(n)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
