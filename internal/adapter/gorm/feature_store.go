package gorm

import (
	"context"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateFeature implements port.FeatureStore.
func (s *Store) CreateFeature(ctx context.Context, teamID model.TeamID, feature *model.Feature) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit(clause.Associations).Create(fromFeature(feature)).Error; err != nil {
			return translateError(err)
		}

		position, err := nextPosition(db, &TeamFeature{}, "team_id", string(teamID))
		if err != nil {
			return errors.WithStack(err)
		}

		ref := &TeamFeature{
			TeamID:    string(teamID),
			FeatureID: string(feature.ID),
			Position:  position,
		}

		if err := db.Omit(clause.Associations).Create(ref).Error; err != nil {
			return translateError(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetFeatureByHandle implements port.FeatureStore.
func (s *Store) GetFeatureByHandle(ctx context.Context, handle string) (*model.Feature, error) {
	var feature Feature

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Stories", orderByPosition).First(&feature, "handle = ?", handle).Error; err != nil {
			return translateError(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toFeature(&feature), nil
}

// GetFeaturesByID implements port.FeatureStore.
func (s *Store) GetFeaturesByID(ctx context.Context, featureIDs ...model.FeatureID) ([]*model.Feature, error) {
	if len(featureIDs) == 0 {
		return []*model.Feature{}, nil
	}

	var features []*Feature

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Stories", orderByPosition).Where("id IN ?", toStrings(featureIDs)).Find(&features).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	features = sortByIDs(features, featureIDs, func(f *Feature) string { return f.ID })

	wrapped := make([]*model.Feature, 0, len(features))
	for _, f := range features {
		wrapped = append(wrapped, toFeature(f))
	}

	return wrapped, nil
}

// AttachStory implements port.FeatureStore.
func (s *Store) AttachStory(ctx context.Context, teamID model.TeamID, featureID model.FeatureID, storyID model.StoryID) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		var ref TeamFeature
		if err := db.First(&ref, "team_id = ? AND feature_id = ?", string(teamID), string(featureID)).Error; err != nil {
			return translateError(err)
		}

		result := db.Delete(&TeamBacklogStory{}, "team_id = ? AND story_id = ?", string(teamID), string(storyID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		position, err := nextPosition(db, &FeatureStory{}, "feature_id", string(featureID))
		if err != nil {
			return errors.WithStack(err)
		}

		attached := &FeatureStory{
			FeatureID: string(featureID),
			StoryID:   string(storyID),
			Position:  position,
		}

		if err := db.Omit(clause.Associations).Create(attached).Error; err != nil {
			return translateError(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteFeature implements port.FeatureStore.
func (s *Store) DeleteFeature(ctx context.Context, featureID model.FeatureID) (*port.DeleteReport, error) {
	var report *port.DeleteReport

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		r, err := deleteFeatures(db, string(featureID))
		if err != nil {
			return errors.WithStack(err)
		}

		if r.Features == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		report = r

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return report, nil
}
