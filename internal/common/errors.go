// Package common holds sentinel errors and small helpers shared by the
// folio client packages. Callers match the errors with errors.Is.
package common

import "errors"

var (
	// ErrValidation marks input rejected before any request was sent.
	ErrValidation = errors.New("validation error")

	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
