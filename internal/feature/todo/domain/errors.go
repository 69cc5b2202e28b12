// Package domain defines domain-level errors for the todo feature.
package domain

import "errors"

var (
	// ErrTodoNotFound indicates that no todo exists with the given ID.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrTitleAlreadyExists indicates that a todo with the given title already exists.
	ErrTitleAlreadyExists = errors.New("todo with that title already exists")
)
