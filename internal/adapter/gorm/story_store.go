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

// CreateBacklogStory implements port.StoryStore.
func (s *Store) CreateBacklogStory(ctx context.Context, teamID model.TeamID, story *model.Story) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit(clause.Associations).Create(fromStory(story)).Error; err != nil {
			return translateError(err)
		}

		position, err := nextPosition(db, &TeamBacklogStory{}, "team_id", string(teamID))
		if err != nil {
			return errors.WithStack(err)
		}

		ref := &TeamBacklogStory{
			TeamID:   string(teamID),
			StoryID:  string(story.ID),
			Position: position,
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

// GetStoryByHandle implements port.StoryStore.
func (s *Store) GetStoryByHandle(ctx context.Context, handle string) (*model.Story, error) {
	var story Story

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Tasks", orderByPosition).First(&story, "handle = ?", handle).Error; err != nil {
			return translateError(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toStory(&story), nil
}

// GetStoriesByID implements port.StoryStore.
func (s *Store) GetStoriesByID(ctx context.Context, storyIDs ...model.StoryID) ([]*model.Story, error) {
	if len(storyIDs) == 0 {
		return []*model.Story{}, nil
	}

	var stories []*Story

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Tasks", orderByPosition).Where("id IN ?", toStrings(storyIDs)).Find(&stories).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stories = sortByIDs(stories, storyIDs, func(s *Story) string { return s.ID })

	wrapped := make([]*model.Story, 0, len(stories))
	for _, s := range stories {
		wrapped = append(wrapped, toStory(s))
	}

	return wrapped, nil
}

// SaveStory implements port.StoryStore.
func (s *Store) SaveStory(ctx context.Context, story *model.Story) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&Story{}).Where("id = ?", string(story.ID)).Updates(map[string]any{
			"name":                story.Name,
			"estimate":            story.Estimate,
			"notes":               story.Notes,
			"acceptance_criteria": story.AcceptanceCriteria,
			"status":              string(story.Status),
		})
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteStory implements port.StoryStore.
func (s *Store) DeleteStory(ctx context.Context, storyID model.StoryID) (*port.DeleteReport, error) {
	var report *port.DeleteReport

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		r, err := deleteStories(db, string(storyID))
		if err != nil {
			return errors.WithStack(err)
		}

		if r.Stories == 0 {
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
