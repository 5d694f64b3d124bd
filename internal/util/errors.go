package util

import "errors"

// NavigateBackDelaySeconds is how long the front-end waits before leaving
// a view it was denied access to.
const NavigateBackDelaySeconds = 3

var (
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrTokenExpired     = errors.New("token expired")
	ErrPermissionDenied = errors.New("you do not have permission to view these results")
)
