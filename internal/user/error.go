package user

import "errors"

var (
	ErrValidation         = errors.New("missing required fields")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrNothingToUpdate    = errors.New("no fields to update")
)
