package gorm

import (
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The helpers below must run inside a transaction.

func deleteTeam(db *gorm.DB, teamID string) (*port.DeleteReport, error) {
	var team Team
	if err := db.Select("id").First(&team, "id = ?", teamID).Error; err != nil {
		return nil, translateError(err)
	}

	var featureIDs []string
	if err := db.Model(&TeamFeature{}).Where("team_id = ?", teamID).Pluck("feature_id", &featureIDs).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	var storyIDs []string
	if err := db.Model(&TeamBacklogStory{}).Where("team_id = ?", teamID).Pluck("story_id", &storyIDs).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	report, err := deleteStories(db, storyIDs...)
	if err != nil {
		return nil, errors.Wrap(err, "could not delete team backlog")
	}

	featuresReport, err := deleteFeatures(db, featureIDs...)
	if err != nil {
		return nil, errors.Wrap(err, "could not delete team features")
	}

	report.Features += featuresReport.Features
	report.Stories += featuresReport.Stories
	report.Tasks += featuresReport.Tasks

	result := db.Delete(&Team{}, "id = ?", teamID)
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}

	report.Teams = result.RowsAffected

	return report, nil
}

func deleteFeatures(db *gorm.DB, featureIDs ...string) (*port.DeleteReport, error) {
	report := &port.DeleteReport{}

	if len(featureIDs) == 0 {
		return report, nil
	}

	var storyIDs []string
	if err := db.Model(&FeatureStory{}).Where("feature_id IN ?", featureIDs).Pluck("story_id", &storyIDs).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	storiesReport, err := deleteStories(db, storyIDs...)
	if err != nil {
		return nil, errors.Wrap(err, "could not delete feature stories")
	}

	report.Stories = storiesReport.Stories
	report.Tasks = storiesReport.Tasks

	result := db.Delete(&Feature{}, "id IN ?", featureIDs)
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}

	report.Features = result.RowsAffected

	return report, nil
}

func deleteStories(db *gorm.DB, storyIDs ...string) (*port.DeleteReport, error) {
	report := &port.DeleteReport{}

	if len(storyIDs) == 0 {
		return report, nil
	}

	var taskIDs []string
	if err := db.Model(&StoryTask{}).Where("story_id IN ?", storyIDs).Pluck("task_id", &taskIDs).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	result := db.Delete(&Story{}, "id IN ?", storyIDs)
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}

	report.Stories = result.RowsAffected

	if len(taskIDs) > 0 {
		result := db.Delete(&Task{}, "id IN ?", taskIDs)
		if result.Error != nil {
			return nil, errors.WithStack(result.Error)
		}

		report.Tasks = result.RowsAffected
	}

	return report, nil
}
