package service

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication_required")
	ErrForbidden              = errors.New("forbidden")
	ErrUserNotFound           = errors.New("user_not_found")
	ErrMalformedCommand       = errors.New("malformed_command")
	ErrDuplicateUser          = errors.New("duplicate_user")
	ErrAssistantUnavailable   = errors.New("assistant_unavailable")
	ErrInvalidCredentials     = errors.New("invalid_credentials")
	ErrInvalidToken           = errors.New("invalid_token")
	ErrInvalidSignup          = errors.New("invalid_signup")
	ErrInvalidMeal            = errors.New("invalid_meal")
	ErrInvalidPrompt          = errors.New("invalid_prompt")
)
