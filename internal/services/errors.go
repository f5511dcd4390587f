package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists       = errors.New("username already registered")
	ErrInvalidCredentials      = errors.New("incorrect username or password")
	ErrInvalidToken            = errors.New("could not validate credentials")
	ErrInactiveUser            = errors.New("inactive user")
	ErrTrackNotFound           = errors.New("track not found")
	ErrLikeNotFound            = errors.New("like not found")
	ErrLikeAlreadyExists       = errors.New("track already liked")
	ErrForbidden               = errors.New("not enough permissions")
	ErrInvalidInput            = errors.New("invalid input")
	ErrBackingStoreUnavailable = errors.New("backing store unavailable")
)
