package service

import (
	"fmt"
)

type ErrorKind string

const (
	KindInvalidRequest      ErrorKind = "INVALID_REQUEST"
	KindUnauthorized        ErrorKind = "UNAUTHORIZED"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindNotAllowed          ErrorKind = "NOT_ALLOWED"
	KindInternalServerError ErrorKind = "INTERNAL_SERVER_ERROR"
	KindServiceUnavailable  ErrorKind = "SERVICE_UNAVAILABLE"
	KindTooManyRequests     ErrorKind = "TOO_MANY_REQUESTS"
)

// Error is a domain failure which can be safely reported to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
	Type    string
}

// Error implements error.
func (e *Error) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Type, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

var (
	ErrInvalidRequest          = NewError(KindInvalidRequest, "Invalid Request")
	ErrUnauthorized            = NewError(KindUnauthorized, "Unauthorized")
	ErrNotAllowed              = NewError(KindNotAllowed, "Not Allowed")
	ErrInternalServerError     = NewError(KindInternalServerError, "Internal Server Error")
	ErrUserAlreadyExists       = NewError(KindInvalidRequest, "User already exists")
	ErrUserNotFound            = NewError(KindNotFound, "User does not exist")
	ErrIncorrectCombination    = NewError(KindInvalidRequest, "Incorrect Combination")
	ErrTeamAlreadyExists       = NewError(KindInvalidRequest, "Team already exists")
	ErrTeamNotFound            = NewError(KindNotFound, "Team does not exist")
	ErrUserNotInTeam           = NewError(KindNotFound, "User is not added to this team")
	ErrUserAlreadyInTeam       = NewError(KindNotFound, "User is already added to team")
	ErrStoryNotFound           = NewError(KindNotFound, "Story does not exist")
	ErrFeatureNotFound         = NewError(KindNotFound, "Feature does not exist")
	ErrInvalidStatusTransition = NewError(KindInvalidRequest, "Invalid status transition")
	ErrTooManyRequests         = NewError(KindTooManyRequests, "Too Many Requests")
	ErrMaintenance             = &Error{
		Kind:    KindServiceUnavailable,
		Message: "Maintenance in progress",
		Type:    "MAINTENANCE_MODE",
	}
)
