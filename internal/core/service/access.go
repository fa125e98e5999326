package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/backlog/internal/metrics"
	"github.com/pkg/errors"
)

// getMemberTeam returns the team with the given slug if the user is one of
// its members. Teams the user cannot see are reported as not found.
func getMemberTeam(ctx context.Context, store port.TeamStore, user *model.User, slug string) (*model.Team, error) {
	if user == nil {
		return nil, errors.WithStack(ErrUnauthorized)
	}

	if slug == "" {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	team, err := store.GetTeamBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrTeamNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if !team.IsMember(user.ID) {
		return nil, errors.WithStack(ErrTeamNotFound)
	}

	return team, nil
}

func getOwnedTeam(ctx context.Context, store port.TeamStore, user *model.User, slug string) (*model.Team, error) {
	team, err := getMemberTeam(ctx, store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !team.IsOwner(user.ID) {
		return nil, errors.WithStack(ErrNotAllowed)
	}

	return team, nil
}

// getTeamStory returns the story with the given handle if it belongs to the
// backlog of the team or to one of its features.
func getTeamStory(ctx context.Context, store port.Store, team *model.Team, handle string) (*model.Story, error) {
	story, err := store.GetStoryByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrStoryNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if team.HasBacklogStory(story.ID) {
		return story, nil
	}

	if len(team.FeatureIDs) == 0 {
		return nil, errors.WithStack(ErrStoryNotFound)
	}

	features, err := store.GetFeaturesByID(ctx, team.FeatureIDs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, f := range features {
		if f.HasStory(story.ID) {
			return story, nil
		}
	}

	return nil, errors.WithStack(ErrStoryNotFound)
}

func getTeamFeature(ctx context.Context, store port.FeatureStore, team *model.Team, handle string) (*model.Feature, error) {
	feature, err := store.GetFeatureByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrFeatureNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if !team.HasFeature(feature.ID) {
		return nil, errors.WithStack(ErrFeatureNotFound)
	}

	return feature, nil
}

func recordDeletion(ctx context.Context, report *port.DeleteReport) {
	if report == nil {
		return
	}

	metrics.CascadeDeleted.WithLabelValues(metrics.KindTeam).Add(float64(report.Teams))
	metrics.CascadeDeleted.WithLabelValues(metrics.KindFeature).Add(float64(report.Features))
	metrics.CascadeDeleted.WithLabelValues(metrics.KindStory).Add(float64(report.Stories))
	metrics.CascadeDeleted.WithLabelValues(metrics.KindTask).Add(float64(report.Tasks))

	slog.InfoContext(ctx, "records deleted",
		slog.Int64("teams", report.Teams),
		slog.Int64("features", report.Features),
		slog.Int64("stories", report.Stories),
		slog.Int64("tasks", report.Tasks),
	)
}
