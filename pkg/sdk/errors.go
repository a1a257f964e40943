package sdk

import (
	"fmt"
	"net/http"
)

// apiError is a non-2xx response from the server. The InsurEase API
// reports failures as {"detail": "..."} bodies.
type apiError struct {
	StatusCode int
	Detail     string
}

func (e *apiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// detailOr returns the server-supplied detail message, or fallback when
// the response carried none.
func (e *apiError) detailOr(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

func (e *apiError) unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AuthError reports a failed login. Message carries the server detail when
// present, else a generic fallback.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// RegistrationError reports a failed registration.
type RegistrationError struct {
	Message string
	Err     error
}

func (e *RegistrationError) Error() string { return e.Message }
func (e *RegistrationError) Unwrap() error { return e.Err }

// FetchUserError reports a failed profile fetch.
type FetchUserError struct {
	Message string
	Err     error
}

func (e *FetchUserError) Error() string { return e.Message }
func (e *FetchUserError) Unwrap() error { return e.Err }

// UpdateUserError reports a failed profile update.
type UpdateUserError struct {
	Message string
	Err     error
}

func (e *UpdateUserError) Error() string { return e.Message }
func (e *UpdateUserError) Unwrap() error { return e.Err }

// FetchUsersError reports a failed user listing.
type FetchUsersError struct {
	Message string
	Err     error
}

func (e *FetchUsersError) Error() string { return e.Message }
func (e *FetchUsersError) Unwrap() error { return e.Err }

// DeleteUserError reports a failed user deletion.
type DeleteUserError struct {
	Message string
	Err     error
}

func (e *DeleteUserError) Error() string { return e.Message }
func (e *DeleteUserError) Unwrap() error { return e.Err }

// QuestionError reports a failed policy question.
type QuestionError struct {
	Message string
	Err     error
}

func (e *QuestionError) Error() string { return e.Message }
func (e *QuestionError) Unwrap() error { return e.Err }

// CompareError reports a failed policy comparison.
type CompareError struct {
	Message string
	Err     error
}

func (e *CompareError) Error() string { return e.Message }
func (e *CompareError) Unwrap() error { return e.Err }

// NetworkError wraps a transport-level failure (DNS, connection reset,
// context cancellation) on an operation that otherwise reports typed
// domain errors.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }
