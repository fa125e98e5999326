package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type FeatureManagerOptions struct {
	MaxAttempts int
}

type FeatureManagerOptionFunc func(opts *FeatureManagerOptions)

func WithFeatureManagerMaxAttempts(maxAttempts int) FeatureManagerOptionFunc {
	return func(opts *FeatureManagerOptions) {
		opts.MaxAttempts = maxAttempts
	}
}

func NewFeatureManagerOptions(funcs ...FeatureManagerOptionFunc) *FeatureManagerOptions {
	opts := &FeatureManagerOptions{
		MaxAttempts: DefaultMaxAttempts,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type FeatureManager struct {
	store port.Store

	maxAttempts int
}

func (m *FeatureManager) CreateFeature(ctx context.Context, user *model.User, slug string, name string) (*model.Feature, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if strings.TrimSpace(name) == "" {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	var feature *model.Feature

	_, err = insertWithUniqueID(
		ctx,
		RandomHandle(HandleLength),
		existsBy(m.store.GetFeatureByHandle),
		m.maxAttempts,
		func(ctx context.Context, handle string) error {
			feature = model.NewFeature(handle, name, user)
			return m.store.CreateFeature(ctx, team.ID, feature)
		},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := feature.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "feature created", slog.String("slug", slug), slog.String("featureID", feature.Handle))

	return feature, nil
}

func (m *FeatureManager) GetFeature(ctx context.Context, user *model.User, slug string, featureHandle string) (*model.Feature, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	feature, err := getTeamFeature(ctx, m.store, team, featureHandle)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := feature.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	return feature, nil
}

// ListFeatures returns the features of the team, in their creation order.
func (m *FeatureManager) ListFeatures(ctx context.Context, user *model.User, slug string) ([]*model.Feature, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(team.FeatureIDs) == 0 {
		return []*model.Feature{}, nil
	}

	features, err := m.store.GetFeaturesByID(ctx, team.FeatureIDs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := model.PopulateAll(ctx, m.store, features...); err != nil {
		return nil, errors.WithStack(err)
	}

	return features, nil
}

// DeleteFeature removes a feature with its stories and tasks.
func (m *FeatureManager) DeleteFeature(ctx context.Context, user *model.User, slug string, featureHandle string) error {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	feature, err := getTeamFeature(ctx, m.store, team, featureHandle)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("featureID", featureHandle))

	report, err := m.store.DeleteFeature(ctx, feature.ID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return errors.WithStack(ErrFeatureNotFound)
		}

		slog.ErrorContext(ctx, "could not delete feature", slogx.Error(err))

		return errors.WithStack(err)
	}

	recordDeletion(ctx, report)

	return nil
}

// AttachStory moves a story from the backlog of the team to one of its features.
func (m *FeatureManager) AttachStory(ctx context.Context, user *model.User, slug string, featureHandle string, storyHandle string) (*model.Feature, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	feature, err := getTeamFeature(ctx, m.store, team, featureHandle)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	story, err := m.store.GetStoryByHandle(ctx, storyHandle)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrStoryNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if !team.HasBacklogStory(story.ID) {
		return nil, errors.WithStack(ErrStoryNotFound)
	}

	if err := m.store.AttachStory(ctx, team.ID, feature.ID, story.ID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrStoryNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return m.GetFeature(ctx, user, slug, featureHandle)
}

func NewFeatureManager(store port.Store, funcs ...FeatureManagerOptionFunc) *FeatureManager {
	opts := NewFeatureManagerOptions(funcs...)

	return &FeatureManager{
		store:       store,
		maxAttempts: opts.MaxAttempts,
	}
}
