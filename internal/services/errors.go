package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrTitleRequired      = errors.New("title is required")
	ErrNameRequired       = errors.New("name is required")
	ErrTextRequired       = errors.New("text is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
