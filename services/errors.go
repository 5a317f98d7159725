package services

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for an unknown username and for a wrong
	// password alike, so callers cannot tell which one failed
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidToken means the bearer token failed verification
	ErrInvalidToken = errors.New("Failed to authenticate token")
	// ErrAccountNotFound means the token is valid but its user no longer exists
	ErrAccountNotFound = errors.New("User not found")

	errHashing = errors.New("hash password")
)

// ValidationError is a rejected request body or query
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func unprocessable(message string) *ValidationError {
	return &ValidationError{Status: http.StatusUnprocessableEntity, Message: message}
}

func badRequest(message string) *ValidationError {
	return &ValidationError{Status: http.StatusBadRequest, Message: message}
}

// NotFoundError is an unknown id for Resource ("Amenity", "User", ...)
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}
