package service

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already in use")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrValidation         = errors.New("missing required fields")
	ErrPostNotFound       = errors.New("post not found")
	ErrInternalServer     = errors.New("internal server error")
)
