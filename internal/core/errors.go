package core

import "errors"

var (
	// ErrValidation marks input rejected before any model call.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream marks a failed, timed out or malformed model call.
	ErrUpstream = errors.New("upstream model call failed")
)
