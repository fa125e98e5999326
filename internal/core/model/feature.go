package model

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

type FeatureID string

func NewFeatureID() FeatureID {
	return FeatureID(xid.New().String())
}

type Feature struct {
	ID FeatureID

	// Handle is the application identifier, exposed as "featureId"
	Handle string

	Name      string
	CreatedAt time.Time

	OwnerID  UserID
	StoryIDs []StoryID

	Owner   *User
	Stories []*Story
}

func NewFeature(handle string, name string, owner *User) *Feature {
	return &Feature{
		ID:        NewFeatureID(),
		Handle:    handle,
		Name:      name,
		CreatedAt: time.Now(),
		OwnerID:   owner.ID,
		Owner:     owner,
	}
}

func (f *Feature) HasStory(storyID StoryID) bool {
	return slices.Contains(f.StoryIDs, storyID)
}

type FeatureView struct {
	Name    string      `json:"name"`
	Handle  string      `json:"featureId"`
	Owner   *UserView   `json:"owner,omitempty"`
	Stories []StoryView `json:"stories"`
}

// Populate implements Materializable.
func (f *Feature) Populate(ctx context.Context, resolver Resolver) error {
	owner, err := resolveOwner(ctx, resolver, f.OwnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	f.Owner = owner

	if len(f.StoryIDs) > 0 {
		stories, err := resolver.GetStoriesByID(ctx, f.StoryIDs...)
		if err != nil {
			return errors.Wrap(err, "could not resolve feature stories")
		}

		if err := PopulateAll(ctx, resolver, stories...); err != nil {
			return errors.WithStack(err)
		}

		f.Stories = stories
	}

	return nil
}

// Clean implements Materializable.
func (f *Feature) Clean() FeatureView {
	return FeatureView{
		Name:    f.Name,
		Handle:  f.Handle,
		Owner:   cleanOwner(f.Owner),
		Stories: CleanAll[StoryView](f.Stories),
	}
}

var _ Materializable[FeatureView] = &Feature{}
