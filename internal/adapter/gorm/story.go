package gorm

import (
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

type Story struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Handle string `gorm:"unique"`
	Name   string

	Estimate           float64
	Notes              string
	AcceptanceCriteria string
	Status             string `gorm:"index"`

	Owner   *User
	OwnerID string `gorm:"index"`

	Tasks []*StoryTask `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE;"`
}

type StoryTask struct {
	TaskID  string `gorm:"primaryKey;autoIncrement:false"`
	StoryID string `gorm:"index"`

	Task *Task `gorm:"constraint:OnDelete:CASCADE;"`

	Position int
}

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name   string
	Status string
	Hours  float64

	Owner   *User
	OwnerID string `gorm:"index"`
}

func fromStory(s *model.Story) *Story {
	return &Story{
		ID:                 string(s.ID),
		CreatedAt:          s.CreatedAt,
		Handle:             s.Handle,
		Name:               s.Name,
		Estimate:           s.Estimate,
		Notes:              s.Notes,
		AcceptanceCriteria: s.AcceptanceCriteria,
		Status:             string(s.Status),
		OwnerID:            string(s.OwnerID),
	}
}

func toStory(s *Story) *model.Story {
	story := &model.Story{
		ID:                 model.StoryID(s.ID),
		Handle:             s.Handle,
		Name:               s.Name,
		Estimate:           s.Estimate,
		Notes:              s.Notes,
		AcceptanceCriteria: s.AcceptanceCriteria,
		Status:             model.StoryStatus(s.Status),
		CreatedAt:          s.CreatedAt,
		OwnerID:            model.UserID(s.OwnerID),
		TaskIDs:            make([]model.TaskID, 0, len(s.Tasks)),
	}

	for _, t := range s.Tasks {
		story.TaskIDs = append(story.TaskIDs, model.TaskID(t.TaskID))
	}

	return story
}
