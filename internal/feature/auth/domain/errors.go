// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	// This is returned during signup, either from the pre-check or remapped
	// from the store's unique-constraint violation under a registration race.
	ErrEmailAlreadyExists = errors.New("user with that mail already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Unknown mail, wrong password and an unreadable stored hash all surface
	// as this one error so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid mail or password")
)
