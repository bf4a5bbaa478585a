package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"runnerspro/internal/auth"
	"runnerspro/internal/session"
)

// Error is an error with the HTTP status and machine-readable code it is reported with.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error.
func NewError(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var errInternal = errors.New("internal server error")

// classify maps domain errors onto API errors. Unknown errors become a 500 that does not
// leak the underlying message.
func classify(err error) *Error {
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case session.IsNotFound(err):
		return NewError(http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return NewError(http.StatusUnauthorized, "invalid_credentials", err)
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrNameTooShort):
		return NewError(http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, session.ErrUnknownApp):
		return NewError(http.StatusNotFound, "unknown_app", err)
	case errors.Is(err, session.ErrAppNotConnected):
		return NewError(http.StatusConflict, "app_not_connected", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewError(http.StatusServiceUnavailable, "request_cancelled", err)
	default:
		return NewError(http.StatusInternalServerError, "internal_error", errInternal)
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	apiErr := classify(err)
	if apiErr.Status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(apiErr.Status, ErrorBody{Error: apiErr.Code, Message: apiErr.Error()})
}
