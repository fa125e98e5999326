package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/backlog/internal/adapter/cache"
	gormAdapter "github.com/bornholm/backlog/internal/adapter/gorm"
	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

var getGormStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewStore(db), nil
})

var GetStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Store, error) {
	gormStore, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var store port.Store = gormStore

	if conf.Storage.Database.Cache.Users.Enabled {
		slog.DebugContext(ctx, "using cached user store", slog.Duration("ttl", conf.Storage.Database.Cache.Users.TTL), slog.Int("cache_size", conf.Storage.Database.Cache.Users.Size))
		store = cache.NewStore(store, conf.Storage.Database.Cache.Users.Size, conf.Storage.Database.Cache.Users.TTL)
	}

	return store, nil
})

// MigrateFromConfig creates or updates the database schema.
func MigrateFromConfig(ctx context.Context, conf *config.Config) error {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := store.Migrate(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
