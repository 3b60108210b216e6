package service

import "errors"

// Failure taxonomy shared across services. All are local, synchronous
// failures surfaced directly to the caller; none are retried.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login failures don't leak which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound signals an inconsistent session: the token referenced
	// a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	ErrProjectNotFound = errors.New("project not found")

	// ErrForbidden: authenticated but neither owner nor admin.
	ErrForbidden = errors.New("not permitted")
)
