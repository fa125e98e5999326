package gorm

import (
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

type Feature struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Handle string `gorm:"unique"`
	Name   string

	Owner   *User
	OwnerID string `gorm:"index"`

	Stories []*FeatureStory `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE;"`
}

type FeatureStory struct {
	StoryID   string `gorm:"primaryKey;autoIncrement:false"`
	FeatureID string `gorm:"index"`

	Story *Story `gorm:"constraint:OnDelete:CASCADE;"`

	Position int
}

func fromFeature(f *model.Feature) *Feature {
	return &Feature{
		ID:        string(f.ID),
		CreatedAt: f.CreatedAt,
		Handle:    f.Handle,
		Name:      f.Name,
		OwnerID:   string(f.OwnerID),
	}
}

func toFeature(f *Feature) *model.Feature {
	feature := &model.Feature{
		ID:        model.FeatureID(f.ID),
		Handle:    f.Handle,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		OwnerID:   model.UserID(f.OwnerID),
		StoryIDs:  make([]model.StoryID, 0, len(f.Stories)),
	}

	for _, s := range f.Stories {
		feature.StoryIDs = append(feature.StoryIDs, model.StoryID(s.StoryID))
	}

	return feature
}
