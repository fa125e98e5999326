package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, query url.Values, body io.Reader, result io.Writer) error {
	url := c.baseURL.JoinPath("/api/v1", path)

	if query != nil {
		url.RawQuery = query.Encode()
	}

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	)

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		serverErr := &Error{StatusCode: res.StatusCode}
		if err := json.NewDecoder(res.Body).Decode(serverErr); err != nil {
			return errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
		}

		return errors.WithStack(serverErr)
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, query url.Values, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, query, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
