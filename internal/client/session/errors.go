package session

import "errors"

var (
	ErrEmptyToken = errors.New("session token is empty")

	errNoToken      = errors.New("stored session has no token")
	errTokenExpired = errors.New("stored session token has expired")
)
