package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) CreateTeam(ctx context.Context, slug string, name string) (*model.TeamView, error) {
	var team model.TeamView
	if err := c.jsonRequest(ctx, http.MethodPost, "/team", nil, api.CreateTeamRequest{Slug: slug, Name: name}, &team); err != nil {
		return nil, errors.WithStack(err)
	}

	return &team, nil
}

func (c *Client) GetTeam(ctx context.Context, slug string) (*model.TeamView, error) {
	var team model.TeamView
	if err := c.jsonRequest(ctx, http.MethodGet, "/team", url.Values{"slug": {slug}}, nil, &team); err != nil {
		return nil, errors.WithStack(err)
	}

	return &team, nil
}

func (c *Client) ListTeams(ctx context.Context) ([]model.TeamView, error) {
	teams := make([]model.TeamView, 0)
	if err := c.jsonRequest(ctx, http.MethodGet, "/teams", nil, nil, &teams); err != nil {
		return nil, errors.WithStack(err)
	}

	return teams, nil
}

func (c *Client) DeleteTeam(ctx context.Context, slug string) error {
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/delete", nil, api.TeamRequest{Slug: slug}, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ChangeOwner transfers the team to the user identified by its public handle.
func (c *Client) ChangeOwner(ctx context.Context, slug string, userHandle string) (*model.TeamView, error) {
	var team model.TeamView
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/change-owner", nil, api.ChangeOwnerRequest{Slug: slug, TargetUserID: userHandle}, &team); err != nil {
		return nil, errors.WithStack(err)
	}

	return &team, nil
}

func (c *Client) AddMember(ctx context.Context, slug string, userHandle string) (*model.TeamView, error) {
	var team model.TeamView
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/add-member", nil, api.AddMemberRequest{Slug: slug, UserID: userHandle}, &team); err != nil {
		return nil, errors.WithStack(err)
	}

	return &team, nil
}
