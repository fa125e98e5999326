package client

import (
	"context"
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) AddStory(ctx context.Context, req api.AddStoryRequest) (*model.StoryView, error) {
	var story model.StoryView
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/add-story", nil, req, &story); err != nil {
		return nil, errors.WithStack(err)
	}

	return &story, nil
}

func (c *Client) UpdateStory(ctx context.Context, req api.UpdateStoryRequest) (*model.StoryView, error) {
	var story model.StoryView
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/update-story", nil, req, &story); err != nil {
		return nil, errors.WithStack(err)
	}

	return &story, nil
}

func (c *Client) DeleteStory(ctx context.Context, slug string, storyHandle string) error {
	if err := c.jsonRequest(ctx, http.MethodPost, "/team/delete-story", nil, api.StoryRequest{Slug: slug, StoryID: storyHandle}, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
