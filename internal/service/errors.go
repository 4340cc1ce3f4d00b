package service

import (
	"errors"

	"kycboard/internal/validation"
)

var (
	// ErrValidation wraps every payload validation failure.
	ErrValidation = validation.ErrInvalid
	// ErrInvalidCredentials indicates that provided login credentials are incorrect. Unknown
	// usernames and wrong passwords share it.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrMissingToken is returned when a request carries no usable bearer token.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned for malformed, tampered or foreign tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for well-signed tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrNotFound is returned when the addressed record or account does not exist.
	ErrNotFound = errors.New("not found")
)
