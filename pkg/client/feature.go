package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) CreateFeature(ctx context.Context, slug string, name string) (*model.FeatureView, error) {
	var feature model.FeatureView
	if err := c.jsonRequest(ctx, http.MethodPost, "/feature", nil, api.CreateFeatureRequest{Slug: slug, Name: name}, &feature); err != nil {
		return nil, errors.WithStack(err)
	}

	return &feature, nil
}

func (c *Client) GetFeature(ctx context.Context, slug string, featureHandle string) (*model.FeatureView, error) {
	var feature model.FeatureView
	if err := c.jsonRequest(ctx, http.MethodGet, "/feature", featureQuery(slug, featureHandle), nil, &feature); err != nil {
		return nil, errors.WithStack(err)
	}

	return &feature, nil
}

func (c *Client) ListFeatures(ctx context.Context, slug string) ([]model.FeatureView, error) {
	features := make([]model.FeatureView, 0)
	if err := c.jsonRequest(ctx, http.MethodGet, "/features", url.Values{"slug": {slug}}, nil, &features); err != nil {
		return nil, errors.WithStack(err)
	}

	return features, nil
}

func (c *Client) DeleteFeature(ctx context.Context, slug string, featureHandle string) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, "/feature", featureQuery(slug, featureHandle), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// AttachStory moves a story of the team backlog into the feature.
func (c *Client) AttachStory(ctx context.Context, slug string, featureHandle string, storyHandle string) (*model.FeatureView, error) {
	req := api.AttachStoryRequest{
		Slug:      slug,
		FeatureID: featureHandle,
		StoryID:   storyHandle,
	}

	var feature model.FeatureView
	if err := c.jsonRequest(ctx, http.MethodPost, "/feature/attach-story", nil, req, &feature); err != nil {
		return nil, errors.WithStack(err)
	}

	return &feature, nil
}

func featureQuery(slug string, featureHandle string) url.Values {
	return url.Values{
		"slug":      {slug},
		"featureId": {featureHandle},
	}
}
