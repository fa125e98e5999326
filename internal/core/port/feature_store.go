package port

import (
	"context"

	"github.com/bornholm/backlog/internal/core/model"
)

type FeatureStore interface {
	// CreateFeature inserts a feature and appends it to the features of a team,
	// or returns ErrAlreadyExists if its handle is taken
	CreateFeature(ctx context.Context, teamID model.TeamID, feature *model.Feature) error

	// GetFeatureByHandle finds a feature by its application identifier, or returns ErrNotFound if not found
	GetFeatureByHandle(ctx context.Context, handle string) (*model.Feature, error)

	// GetFeaturesByID returns the known features matching the given IDs, preserving their order
	GetFeaturesByID(ctx context.Context, featureIDs ...model.FeatureID) ([]*model.Feature, error)

	// AttachStory moves a story from the backlog of a team to one of its features
	AttachStory(ctx context.Context, teamID model.TeamID, featureID model.FeatureID, storyID model.StoryID) error

	// DeleteFeature removes a feature and, in the same transaction, every story and task it owns
	DeleteFeature(ctx context.Context, featureID model.FeatureID) (*DeleteReport, error)
}
