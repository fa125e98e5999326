package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/backlog/internal/core/service"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type ErrorResponse struct {
	Code    service.ErrorKind `json:"error_code"`
	Message string            `json:"error_message"`
	Type    string            `json:"error_type,omitempty"`
}

var statusCodes = map[service.ErrorKind]int{
	service.KindInvalidRequest:      http.StatusBadRequest,
	service.KindUnauthorized:        http.StatusUnauthorized,
	service.KindNotFound:            http.StatusNotFound,
	service.KindNotAllowed:          http.StatusMethodNotAllowed,
	service.KindInternalServerError: http.StatusInternalServerError,
	service.KindServiceUnavailable:  http.StatusServiceUnavailable,
	service.KindTooManyRequests:     http.StatusTooManyRequests,
}

// HandleError writes the error response matching the given error.
// Errors which are not domain errors are logged and reported as internal errors.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *service.Error
	if !errors.As(err, &domainErr) {
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(err))
		domainErr = service.ErrInternalServerError
	}

	writeError(w, r, domainErr)
}

func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.NewError(service.KindNotFound, fmt.Sprintf("Route Not Found - %s", r.RequestURI)))
}

// HandleTooManyRequests reports a rate limited request.
func HandleTooManyRequests(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.ErrTooManyRequests)
}

// HandleInternalError reports an unexpected fault which was already logged.
func HandleInternalError(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.ErrInternalServerError)
}

func handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, service.ErrUnauthorized)
}

func writeError(w http.ResponseWriter, r *http.Request, err *service.Error) {
	status, exists := statusCodes[err.Kind]
	if !exists {
		status = http.StatusInternalServerError
	}

	writeJSON(w, r, status, ErrorResponse{
		Code:    err.Kind,
		Message: err.Message,
		Type:    err.Type,
	})
}
