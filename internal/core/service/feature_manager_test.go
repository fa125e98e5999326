package service

import (
	"context"
	"testing"

	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
)

func TestFeatureManager(t *testing.T) {
	managers := newTestManagers(t)
	ctx := context.Background()

	ada := managers.register(t, "Ada", "Lovelace", "ada@x.com")
	grace := managers.register(t, "Grace", "Hopper", "grace@x.com")

	if _, err := managers.Teams.CreateTeam(ctx, ada, "core", "Core Team"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	feature, err := managers.Features.CreateFeature(ctx, ada, "core", "Login")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := HandleLength, len(feature.Handle); e != g {
		t.Errorf("len(feature.Handle): expected %v, got %v", e, g)
	}

	_, err = managers.Features.CreateFeature(ctx, grace, "core", "Intrusion")
	assertErrorIs(t, err, ErrTeamNotFound)

	story, err := managers.Teams.AddStory(ctx, ada, "core", StoryDraft{Name: "Login form"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	feature, err = managers.Features.AttachStory(ctx, ada, "core", feature.Handle, story.Handle)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	view := feature.Clean()

	if e, g := 1, len(view.Stories); e != g {
		t.Fatalf("len(view.Stories): expected %v, got %v", e, g)
	}

	if view.Stories[0].Owner == nil {
		t.Errorf("view.Stories[0].Owner should be populated")
	}

	// The story left the backlog
	_, err = managers.Features.AttachStory(ctx, ada, "core", feature.Handle, story.Handle)
	assertErrorIs(t, err, ErrStoryNotFound)

	team, err := managers.Teams.GetTeam(ctx, ada, "core")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(team.Backlog); e != g {
		t.Errorf("len(team.Backlog): expected %v, got %v", e, g)
	}

	// Stories attached to a feature are still editable through the team
	name := "Login page"
	if _, err := managers.Teams.UpdateStory(ctx, ada, "core", story.Handle, StoryChanges{Name: &name}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	features, err := managers.Features.ListFeatures(ctx, ada, "core")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(features); e != g {
		t.Fatalf("len(features): expected %v, got %v", e, g)
	}

	_, err = managers.Features.GetFeature(ctx, ada, "core", "unknown")
	assertErrorIs(t, err, ErrFeatureNotFound)

	if err := managers.Features.DeleteFeature(ctx, ada, "core", feature.Handle); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := managers.Store.GetStoryByHandle(ctx, story.Handle); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected %v, got %+v", port.ErrNotFound, err)
	}

	_, err = managers.Features.GetFeature(ctx, ada, "core", feature.Handle)
	assertErrorIs(t, err, ErrFeatureNotFound)

	features, err = managers.Features.ListFeatures(ctx, ada, "core")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(features); e != g {
		t.Errorf("len(features): expected %v, got %v", e, g)
	}
}
