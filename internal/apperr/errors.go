// Package apperr defines the sentinel errors shared by services, repositories
// and handlers. Callers match them with errors.Is; services wrap them with
// fmt.Errorf("%w: ...") to attach the caller-facing message.
package apperr

import "errors"

var (
	// Input was missing or malformed.
	ErrValidation = errors.New("validation failed")

	// The referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// Authenticated but not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// Missing, malformed, expired or badly signed credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	// A unique field is already taken.
	ErrConflict = errors.New("conflict")

	// The asset collaborator failed.
	ErrUpload = errors.New("upload failed")

	// The persistence layer failed; fatal for the request, never retried.
	ErrStore = errors.New("store failure")
)
