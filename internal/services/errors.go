package services

import "errors"

var (
	// ErrInvalidID is returned when a path id is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidToken is returned when a bearer token fails signature or
	// expiry verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidImage is returned for uploads that are not images.
	ErrInvalidImage = errors.New("invalid image")
)
