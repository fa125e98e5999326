package client

import (
	"context"
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var res api.HealthResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/health", nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Register(ctx context.Context, name model.Name, email string, password string) error {
	req := api.RegisterRequest{
		Email:    email,
		Password: password,
	}

	req.Name.First = name.First
	req.Name.Middle = name.Middle
	req.Name.Last = name.Last

	if err := c.jsonRequest(ctx, http.MethodPost, "/register", nil, req, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Login opens a session. The session cookie is kept by the client's cookie jar.
func (c *Client) Login(ctx context.Context, email string, password string) error {
	req := api.LoginRequest{
		Email:    email,
		Password: password,
	}

	if err := c.jsonRequest(ctx, http.MethodPost, "/login", nil, req, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.jsonRequest(ctx, http.MethodPost, "/logout", nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
