package model

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type memoryResolver struct {
	users    map[UserID]*User
	features map[FeatureID]*Feature
	stories  map[StoryID]*Story
	calls    int
}

// GetFeaturesByID implements Resolver.
func (r *memoryResolver) GetFeaturesByID(ctx context.Context, ids ...FeatureID) ([]*Feature, error) {
	r.calls++
	features := make([]*Feature, 0, len(ids))
	for _, id := range ids {
		if f, exists := r.features[id]; exists {
			clone := *f
			features = append(features, &clone)
		}
	}
	return features, nil
}

// GetStoriesByID implements Resolver.
func (r *memoryResolver) GetStoriesByID(ctx context.Context, ids ...StoryID) ([]*Story, error) {
	r.calls++
	stories := make([]*Story, 0, len(ids))
	for _, id := range ids {
		if s, exists := r.stories[id]; exists {
			clone := *s
			stories = append(stories, &clone)
		}
	}
	return stories, nil
}

// GetUsersByID implements Resolver.
func (r *memoryResolver) GetUsersByID(ctx context.Context, ids ...UserID) ([]*User, error) {
	r.calls++
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		if u, exists := r.users[id]; exists {
			clone := *u
			users = append(users, &clone)
		}
	}
	return users, nil
}

var _ Resolver = &memoryResolver{}

func newFixture() (*memoryResolver, *Team) {
	ada := NewUser(Name{First: "Ada", Last: "Lovelace"}, "ada_lovelaceAbCdE", "ada@x.com", "$2a$10$secret")
	grace := NewUser(Name{First: "Grace", Last: "Hopper"}, "grace_hopperFgHiJ", "grace@x.com", "$2a$10$othersecret")

	backlogStory := NewStory("bkl0000001", "Fix bug", ada)
	featureStory := NewStory("fts0000001", "Write docs", grace)
	feature := NewFeature("ftr0000001", "Docs", grace)
	feature.StoryIDs = []StoryID{featureStory.ID}

	team := NewTeam("core", "Core Team", ada)
	team.MemberIDs = append(team.MemberIDs, grace.ID)
	team.FeatureIDs = []FeatureID{feature.ID}
	team.BacklogIDs = []StoryID{backlogStory.ID}

	// Simulate a freshly loaded record
	team.Owner = nil
	team.Members = nil

	resolver := &memoryResolver{
		users:    map[UserID]*User{ada.ID: ada, grace.ID: grace},
		features: map[FeatureID]*Feature{feature.ID: feature},
		stories:  map[StoryID]*Story{backlogStory.ID: backlogStory, featureStory.ID: featureStory},
	}

	return resolver, team
}

func TestTeamPopulateClean(t *testing.T) {
	resolver, team := newFixture()
	ctx := context.Background()

	if err := team.Populate(ctx, resolver); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	view := team.Clean()

	t.Logf("view: %s", spew.Sdump(view))

	if view.Owner == nil {
		t.Fatalf("view.Owner should not be nil")
	}

	if e, g := "ada_lovelaceAbCdE", view.Owner.Handle; e != g {
		t.Errorf("view.Owner.Handle: expected %v, got %v", e, g)
	}

	if e, g := 2, len(view.Members); e != g {
		t.Fatalf("len(view.Members): expected %v, got %v", e, g)
	}

	if e, g := "grace_hopperFgHiJ", view.Members[1].Handle; e != g {
		t.Errorf("view.Members[1].Handle: expected %v, got %v", e, g)
	}

	if e, g := 1, len(view.Features); e != g {
		t.Fatalf("len(view.Features): expected %v, got %v", e, g)
	}

	if e, g := 1, len(view.Features[0].Stories); e != g {
		t.Fatalf("len(view.Features[0].Stories): expected %v, got %v", e, g)
	}

	if view.Features[0].Stories[0].Owner == nil {
		t.Errorf("feature story owner should be populated")
	}

	if e, g := 1, len(view.Backlog); e != g {
		t.Fatalf("len(view.Backlog): expected %v, got %v", e, g)
	}

	if e, g := StoryStatusGrooming, view.Backlog[0].Status; e != g {
		t.Errorf("view.Backlog[0].Status: expected %v, got %v", e, g)
	}
}

func TestPopulateIsIdempotent(t *testing.T) {
	resolver, team := newFixture()
	ctx := context.Background()

	if err := team.Populate(ctx, resolver); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	first, err := json.Marshal(team.Clean())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := team.Populate(ctx, resolver); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := json.Marshal(team.Clean())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := string(first), string(second); e != g {
		t.Errorf("populate twice: expected %s, got %s", e, g)
	}
}

func TestPopulateSkipsEmptyReferences(t *testing.T) {
	ctx := context.Background()

	owner := NewUser(Name{First: "Ada", Last: "Lovelace"}, "ada_lovelace12345", "ada@x.com", "hash")
	resolver := &memoryResolver{users: map[UserID]*User{owner.ID: owner}}

	team := NewTeam("empty", "Empty", owner)

	if err := team.Populate(ctx, resolver); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// One lookup for the owner, one for the members
	if e, g := 2, resolver.calls; e != g {
		t.Errorf("resolver.calls: expected %v, got %v", e, g)
	}

	view := team.Clean()
	if view.Features == nil || view.Backlog == nil {
		t.Errorf("empty reference lists should be serialized as empty arrays")
	}
}

func TestCleanNeverExposesPassword(t *testing.T) {
	resolver, team := newFixture()
	ctx := context.Background()

	if err := team.Populate(ctx, resolver); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	feature := team.Features[0]
	story := team.Backlog[0]
	user := team.Owner

	views := []any{team.Clean(), feature.Clean(), story.Clean(), user.Clean()}

	for _, v := range views {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		raw := strings.ToLower(string(data))

		if strings.Contains(raw, "password") || strings.Contains(raw, "secret") {
			t.Errorf("clean output leaks password: %s", data)
		}
	}
}

func TestCleanWithoutPopulate(t *testing.T) {
	owner := NewUser(Name{First: "Ada", Last: "Lovelace"}, "ada_lovelace12345", "ada@x.com", "hash")
	story := NewStory("abcdefghij", "Fix bug", owner)
	story.Owner = nil

	view := story.Clean()

	if view.Owner != nil {
		t.Errorf("view.Owner: expected nil, got %v", spew.Sdump(view.Owner))
	}

	if e, g := float64(0), view.Estimate; e != g {
		t.Errorf("view.Estimate: expected %v, got %v", e, g)
	}

	if view.Tasks == nil {
		t.Errorf("view.Tasks should be an empty list")
	}
}
