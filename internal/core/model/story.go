package model

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

type StoryID string

func NewStoryID() StoryID {
	return StoryID(xid.New().String())
}

type StoryStatus string

const (
	StoryStatusGrooming  StoryStatus = "GROOMING"
	StoryStatusDefined   StoryStatus = "DEFINED"
	StoryStatusProgress  StoryStatus = "PROGRESS"
	StoryStatusCompleted StoryStatus = "COMPLETED"
	StoryStatusAccepted  StoryStatus = "ACCEPTED"
	StoryStatusReleased  StoryStatus = "RELEASED"
)

// StoryStatuses lists the story lifecycle, in order.
var StoryStatuses = []StoryStatus{
	StoryStatusGrooming,
	StoryStatusDefined,
	StoryStatusProgress,
	StoryStatusCompleted,
	StoryStatusAccepted,
	StoryStatusReleased,
}

func (s StoryStatus) Valid() bool {
	return s.index() != -1
}

func (s StoryStatus) index() int {
	for i, status := range StoryStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

type Story struct {
	ID StoryID

	// Handle is the application identifier, exposed as "storyId"
	Handle string

	Name               string
	Estimate           float64
	Notes              string
	AcceptanceCriteria string
	Status             StoryStatus
	CreatedAt          time.Time

	OwnerID UserID
	TaskIDs []TaskID

	Owner *User
}

func NewStory(handle string, name string, owner *User) *Story {
	return &Story{
		ID:        NewStoryID(),
		Handle:    handle,
		Name:      name,
		Status:    StoryStatusGrooming,
		CreatedAt: time.Now(),
		OwnerID:   owner.ID,
		Owner:     owner,
	}
}

type StoryView struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Handle             string      `json:"storyId"`
	Owner              *UserView   `json:"owner,omitempty"`
	Tasks              []string    `json:"tasks"`
	Estimate           float64     `json:"estimate"`
	Notes              string      `json:"notes"`
	AcceptanceCriteria string      `json:"acceptanceCriteria"`
	Status             StoryStatus `json:"status"`
}

// Populate implements Materializable.
func (s *Story) Populate(ctx context.Context, resolver Resolver) error {
	owner, err := resolveOwner(ctx, resolver, s.OwnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	s.Owner = owner

	return nil
}

// Clean implements Materializable.
func (s *Story) Clean() StoryView {
	tasks := make([]string, 0, len(s.TaskIDs))
	for _, id := range s.TaskIDs {
		tasks = append(tasks, string(id))
	}

	return StoryView{
		ID:                 string(s.ID),
		Name:               s.Name,
		Handle:             s.Handle,
		Owner:              cleanOwner(s.Owner),
		Tasks:              tasks,
		Estimate:           s.Estimate,
		Notes:              s.Notes,
		AcceptanceCriteria: s.AcceptanceCriteria,
		Status:             s.Status,
	}
}

var _ Materializable[StoryView] = &Story{}
