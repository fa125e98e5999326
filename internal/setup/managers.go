package setup

import (
	"context"

	"github.com/bornholm/backlog/internal/config"
	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/service"
	"github.com/pkg/errors"
)

var getAccountManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AccountManager, error) {
	store, err := GetStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	hasher, err := getPasswordHasherFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens, err := getTokenIssuerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accountManager := service.NewAccountManager(
		store, hasher, tokens,
		service.WithAccountManagerMaxAttempts(conf.Identifiers.MaxAttempts),
	)

	return accountManager, nil
})

var getTeamManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TeamManager, error) {
	store, err := GetStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	statusPolicy, err := model.ParseStatusPolicy(conf.Stories.StatusPolicy)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	teamManager := service.NewTeamManager(
		store,
		service.WithTeamManagerMaxAttempts(conf.Identifiers.MaxAttempts),
		service.WithTeamManagerStatusPolicy(statusPolicy),
	)

	return teamManager, nil
})

var getFeatureManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.FeatureManager, error) {
	store, err := GetStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	featureManager := service.NewFeatureManager(
		store,
		service.WithFeatureManagerMaxAttempts(conf.Identifiers.MaxAttempts),
	)

	return featureManager, nil
})
