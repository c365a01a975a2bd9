package services

import "errors"

// Service error taxonomy. Handlers map these onto HTTP statuses with
// errors.Is; wrap with fmt.Errorf("%w: ...") to attach detail.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrCategoryExists     = errors.New("category already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
