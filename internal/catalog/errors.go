package catalog

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrMissingJobFields  = errors.New("title, location and salary are required")
	ErrInvalidJobStatus  = errors.New("invalid job status")
	ErrInvalidUserFilter = errors.New("invalid user filter")
	ErrInvalidAction     = errors.New("invalid moderation action")
	ErrActionNotAllowed  = errors.New("action not allowed for this user")
)
