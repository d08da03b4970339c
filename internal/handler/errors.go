package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/profile-service/internal/service"
)

var (
	errNotAuthorized  = errors.New("user is not authorized")
	errNoAccess       = errors.New("no access")
	errUserRequired   = errors.New("form field 'user' is required")
	errLimitMustBeInt = errors.New("limit must be int")
)

// statusFor maps service errors to the HTTP status sent to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyUsername):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrHistoryDisabled):
		return http.StatusNotFound
	case errors.Is(err, service.ErrIncompleteProfile), errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrCanceled):
		return http.StatusRequestTimeout
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides errors that are not service sentinels.
func publicMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return service.ErrInternal.Error()
	}
	return err.Error()
}
