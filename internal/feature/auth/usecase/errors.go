// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUnauthorized is returned when credentials cannot be verified.
	// It deliberately does not reveal which part of the credentials failed.
	ErrUnauthorized = errors.New("invalid name or password")

	// ErrUserNotFound is returned when a user cannot be found by name or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenNotFound is returned when no token row matches the lookup.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenInvalid is returned when a bearer token is unknown or expired.
	ErrTokenInvalid = errors.New("token is invalid or expired")
)
