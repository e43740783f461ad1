package pathing

import "errors"

var (
	// ErrPathIsRelative is an error that occurs when an absolute path is
	// required but a relative one was given.
	ErrPathIsRelative = errors.New("path is relative")
)
