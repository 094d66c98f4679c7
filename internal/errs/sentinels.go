// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed input rejected before any persistence.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the caller is not allowed to perform the action
	// (e.g. resolving a proposal without owning the Base WOD).
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a storage-level conflict, such as the partial
	// unique index rejecting a second Base WOD for the same (box, date).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
