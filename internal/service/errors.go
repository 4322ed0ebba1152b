package service

import "errors"

// Error texts double as response bodies, so they keep the wire wording.
var (
	ErrUserConflict      = errors.New("Username or email already exists.")
	ErrUserNotFound      = errors.New("User not found.")
	ErrLocationNotFound  = errors.New("Location not found.")
	ErrShareExists       = errors.New("Location share already exists.")
	ErrSelfShare         = errors.New("A user cannot follow themselves.")
	ErrShareUserNotFound = errors.New("Follower or following user not found.")
)
