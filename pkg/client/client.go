package client

import (
	"net/http"
	"net/url"
)

// Client is a typed client of the backlog REST API. The underlying
// http.Client carries a cookie jar so that the session opened by Login is
// reused by subsequent calls.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
}
