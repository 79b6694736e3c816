package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("User not found")

	// ErrUserBlocked is returned when a blocked user attempts to authenticate.
	// Callers should present it as a plain credential failure; it exists so
	// the rejection can be logged distinctly from a bad password.
	ErrUserBlocked = errors.New("user is blocked")

	// ErrBadCredentials is returned when a password does not verify against
	// the stored digest.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when an operation requiring a principal is
	// called without one.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmailOccupied is returned by signup when the email is already
	// registered.
	ErrEmailOccupied = errors.New("email is occupied")

	// ErrEmailConflict is returned when a profile update or admin create
	// targets an email owned by a different user.
	ErrEmailConflict = errors.New("email is occupied")

	// ErrPasswordMismatch is returned when a password and its confirmation
	// field disagree.
	ErrPasswordMismatch = errors.New("passwords are mismatching")

	// ErrRoleNotFound is returned when a requested role name does not resolve.
	ErrRoleNotFound = errors.New("role not found")

	// ErrInvalidArgument is the base error for client-input failures such as
	// dangling entity references or out-of-range values. Wrap it with
	// invalidArgumentf so the message reaches the client.
	ErrInvalidArgument = errors.New("invalid argument")
)

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
