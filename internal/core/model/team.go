package model

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

type TeamID string

func NewTeamID() TeamID {
	return TeamID(xid.New().String())
}

type Team struct {
	ID        TeamID
	Slug      string
	Name      string
	CreatedAt time.Time

	OwnerID    UserID
	MemberIDs  []UserID
	FeatureIDs []FeatureID
	BacklogIDs []StoryID

	Owner    *User
	Members  []*User
	Features []*Feature
	Backlog  []*Story
}

func NewTeam(slug string, name string, owner *User) *Team {
	return &Team{
		ID:        NewTeamID(),
		Slug:      slug,
		Name:      name,
		CreatedAt: time.Now(),
		OwnerID:   owner.ID,
		MemberIDs: []UserID{owner.ID},
		Owner:     owner,
		Members:   []*User{owner},
	}
}

func (t *Team) IsMember(userID UserID) bool {
	return t.OwnerID == userID || slices.Contains(t.MemberIDs, userID)
}

func (t *Team) IsOwner(userID UserID) bool {
	return t.OwnerID == userID
}

func (t *Team) HasFeature(featureID FeatureID) bool {
	return slices.Contains(t.FeatureIDs, featureID)
}

func (t *Team) HasBacklogStory(storyID StoryID) bool {
	return slices.Contains(t.BacklogIDs, storyID)
}

type TeamView struct {
	ID       string        `json:"id"`
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	Owner    *UserView     `json:"owner,omitempty"`
	Features []FeatureView `json:"features"`
	Members  []UserView    `json:"members"`
	Backlog  []StoryView   `json:"backlog"`
}

// Populate implements Materializable.
func (t *Team) Populate(ctx context.Context, resolver Resolver) error {
	owner, err := resolveOwner(ctx, resolver, t.OwnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	t.Owner = owner

	if len(t.MemberIDs) > 0 {
		members, err := resolver.GetUsersByID(ctx, t.MemberIDs...)
		if err != nil {
			return errors.Wrap(err, "could not resolve team members")
		}

		t.Members = members
	}

	if len(t.FeatureIDs) > 0 {
		features, err := resolver.GetFeaturesByID(ctx, t.FeatureIDs...)
		if err != nil {
			return errors.Wrap(err, "could not resolve team features")
		}

		if err := PopulateAll(ctx, resolver, features...); err != nil {
			return errors.WithStack(err)
		}

		t.Features = features
	}

	if len(t.BacklogIDs) > 0 {
		backlog, err := resolver.GetStoriesByID(ctx, t.BacklogIDs...)
		if err != nil {
			return errors.Wrap(err, "could not resolve team backlog")
		}

		if err := PopulateAll(ctx, resolver, backlog...); err != nil {
			return errors.WithStack(err)
		}

		t.Backlog = backlog
	}

	return nil
}

// Clean implements Materializable.
func (t *Team) Clean() TeamView {
	return TeamView{
		ID:       string(t.ID),
		Slug:     t.Slug,
		Name:     t.Name,
		Owner:    cleanOwner(t.Owner),
		Features: CleanAll[FeatureView](t.Features),
		Members:  CleanAll[UserView](t.Members),
		Backlog:  CleanAll[StoryView](t.Backlog),
	}
}

var _ Materializable[TeamView] = &Team{}
