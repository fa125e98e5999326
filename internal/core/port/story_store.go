package port

import (
	"context"

	"github.com/bornholm/backlog/internal/core/model"
)

type StoryStore interface {
	// CreateBacklogStory inserts a story and appends it to the backlog of a team,
	// or returns ErrAlreadyExists if its handle is taken
	CreateBacklogStory(ctx context.Context, teamID model.TeamID, story *model.Story) error

	// GetStoryByHandle finds a story by its application identifier, or returns ErrNotFound if not found
	GetStoryByHandle(ctx context.Context, handle string) (*model.Story, error)

	// GetStoriesByID returns the known stories matching the given IDs, preserving their order
	GetStoriesByID(ctx context.Context, storyIDs ...model.StoryID) ([]*model.Story, error)

	// SaveStory updates the mutable attributes of an existing story
	SaveStory(ctx context.Context, story *model.Story) error

	// DeleteStory removes a story, its tasks and every reference to it
	DeleteStory(ctx context.Context, storyID model.StoryID) (*DeleteReport, error)
}
