package gorm

import (
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

type Team struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Slug string `gorm:"unique"`
	Name string

	Owner   *User
	OwnerID string `gorm:"index"`

	Members  []*TeamMember       `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`
	Features []*TeamFeature      `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`
	Backlog  []*TeamBacklogStory `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`
}

type TeamMember struct {
	TeamID string `gorm:"primaryKey;autoIncrement:false"`
	UserID string `gorm:"primaryKey;autoIncrement:false"`

	User *User `gorm:"constraint:OnDelete:CASCADE;"`

	Position int
}

type TeamFeature struct {
	FeatureID string `gorm:"primaryKey;autoIncrement:false"`
	TeamID    string `gorm:"index"`

	Feature *Feature `gorm:"constraint:OnDelete:CASCADE;"`

	Position int
}

type TeamBacklogStory struct {
	StoryID string `gorm:"primaryKey;autoIncrement:false"`
	TeamID  string `gorm:"index"`

	Story *Story `gorm:"constraint:OnDelete:CASCADE;"`

	Position int
}

func fromTeam(t *model.Team) *Team {
	team := &Team{
		ID:        string(t.ID),
		CreatedAt: t.CreatedAt,
		Slug:      t.Slug,
		Name:      t.Name,
		OwnerID:   string(t.OwnerID),
	}

	return team
}

func toTeam(t *Team) *model.Team {
	team := &model.Team{
		ID:         model.TeamID(t.ID),
		Slug:       t.Slug,
		Name:       t.Name,
		CreatedAt:  t.CreatedAt,
		OwnerID:    model.UserID(t.OwnerID),
		MemberIDs:  make([]model.UserID, 0, len(t.Members)),
		FeatureIDs: make([]model.FeatureID, 0, len(t.Features)),
		BacklogIDs: make([]model.StoryID, 0, len(t.Backlog)),
	}

	for _, m := range t.Members {
		team.MemberIDs = append(team.MemberIDs, model.UserID(m.UserID))
	}

	for _, f := range t.Features {
		team.FeatureIDs = append(team.FeatureIDs, model.FeatureID(f.FeatureID))
	}

	for _, s := range t.Backlog {
		team.BacklogIDs = append(team.BacklogIDs, model.StoryID(s.StoryID))
	}

	return team
}
