package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is returned when the server answers with an error payload.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code"`
	Message    string `json:"error_message"`
	Type       string `json:"error_type,omitempty"`
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status code of the server error wrapped in err,
// or 0 if err does not originate from the server.
func StatusCode(err error) int {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode
	}

	return 0
}
