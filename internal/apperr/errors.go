// Package apperr holds the error taxonomy shared by the resolution engine
// and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when a write would create a second
	// Person or Author under an already-taken canonical name.
	ErrDuplicateName = errors.New("name must be unique")

	// ErrDuplicateUsername is returned when createUser hits an existing username.
	ErrDuplicateUsername = errors.New("username must be unique")

	// ErrAuthentication is returned when a mutation requires a current user
	// and none is present.
	ErrAuthentication = errors.New("not authenticated")

	// ErrInvalidToken is returned when a supplied bearer credential fails
	// signature or format verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned on login failure. The same error is
	// used whether the username exists or the password is wrong.
	ErrInvalidCredentials = errors.New("wrong credentials")
)

// ValidationError reports malformed or constraint-violating input along with
// the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
