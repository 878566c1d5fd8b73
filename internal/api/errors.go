package api

import (
	"errors"
	"fmt"

	"github.com/accommotrack/client-go/internal/validation"
)

// NetworkError wraps transport-level failures (no response, timeout). It is
// deliberately distinct from every definitive server answer: non-destructive
// checks must fail open on it, never report "taken" or "invalid".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerValidationError is a structured 4xx carrying field-keyed messages,
// mapped onto the same error map the client-side validators produce.
type ServerValidationError struct {
	Message string
	Fields  validation.Errors
}

func (e *ServerValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// AuthorizationError covers 401/403, including a wrong password on the
// delete-verification step.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError is a definitive 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ServerError is a 5xx or an unparseable response; the operation is
// considered not applied.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// FeedbackMessage converts any client error into the user-facing text
// shown in a form banner. Callers never surface raw error chains.
func FeedbackMessage(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Connection problem. Please check your network and try again."
	}
	var valErr *ServerValidationError
	if errors.As(err, &valErr) {
		if valErr.Message != "" {
			return valErr.Message
		}
		return "Some fields need attention."
	}
	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		if authErr.Message != "" {
			return authErr.Message
		}
		return "You are not allowed to do that."
	}
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return "The requested record no longer exists."
	}
	return "Something went wrong. Please try again."
}
