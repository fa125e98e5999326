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

type StoryDraft struct {
	Name               string
	Estimate           *float64
	Notes              *string
	AcceptanceCriteria *string
}

// StoryChanges lists the attributes to update. Nil fields are left untouched.
type StoryChanges struct {
	Name               *string
	Estimate           *float64
	Notes              *string
	AcceptanceCriteria *string
	Status             *model.StoryStatus
}

// AddStory appends a new story, in the GROOMING status, to the backlog of the team.
func (m *TeamManager) AddStory(ctx context.Context, user *model.User, slug string, draft StoryDraft) (*model.Story, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	if draft.Estimate != nil && *draft.Estimate < 0 {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	var story *model.Story

	_, err = insertWithUniqueID(
		ctx,
		RandomHandle(HandleLength),
		existsBy(m.store.GetStoryByHandle),
		m.maxAttempts,
		func(ctx context.Context, handle string) error {
			story = model.NewStory(handle, draft.Name, user)

			if draft.Estimate != nil {
				story.Estimate = *draft.Estimate
			}

			if draft.Notes != nil {
				story.Notes = *draft.Notes
			}

			if draft.AcceptanceCriteria != nil {
				story.AcceptanceCriteria = *draft.AcceptanceCriteria
			}

			return m.store.CreateBacklogStory(ctx, team.ID, story)
		},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := story.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "story added", slog.String("slug", slug), slog.String("storyID", story.Handle))

	return story, nil
}

func (m *TeamManager) UpdateStory(ctx context.Context, user *model.User, slug string, storyHandle string, changes StoryChanges) (*model.Story, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	story, err := getTeamStory(ctx, m.store, team, storyHandle)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if changes.Name != nil {
		if strings.TrimSpace(*changes.Name) == "" {
			return nil, errors.WithStack(ErrInvalidRequest)
		}

		story.Name = *changes.Name
	}

	if changes.Estimate != nil {
		if *changes.Estimate < 0 {
			return nil, errors.WithStack(ErrInvalidRequest)
		}

		story.Estimate = *changes.Estimate
	}

	if changes.Notes != nil {
		story.Notes = *changes.Notes
	}

	if changes.AcceptanceCriteria != nil {
		story.AcceptanceCriteria = *changes.AcceptanceCriteria
	}

	if changes.Status != nil {
		status := *changes.Status

		if !status.Valid() {
			return nil, errors.WithStack(ErrInvalidRequest)
		}

		if !m.statusPolicy.Allows(story.Status, status) {
			return nil, errors.WithStack(ErrInvalidStatusTransition)
		}

		story.Status = status
	}

	if err := m.store.SaveStory(ctx, story); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrStoryNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if err := story.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	return story, nil
}

func (m *TeamManager) DeleteStory(ctx context.Context, user *model.User, slug string, storyHandle string) error {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	story, err := getTeamStory(ctx, m.store, team, storyHandle)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx,
		slog.String("slug", slug),
		slog.String("storyID", storyHandle),
	)

	report, err := m.store.DeleteStory(ctx, story.ID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return errors.WithStack(ErrStoryNotFound)
		}

		slog.ErrorContext(ctx, "could not delete story", slogx.Error(err))

		return errors.WithStack(err)
	}

	recordDeletion(ctx, report)

	return nil
}
