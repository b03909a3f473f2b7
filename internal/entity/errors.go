package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Configuration errors
	ErrMissingCredential = errors.New("API key not found")

	// Generation errors
	ErrBackendFailure = errors.New("name service failure")
	ErrEmptyResponse  = errors.New("empty response from name service")

	// Export errors
	ErrFormatUnavailable = errors.New("export format unavailable")

	// Session errors
	ErrNoFavorites = errors.New("no generated names to pick from")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MissingCredentialError reports that the selected backend has no API key configured
type MissingCredentialError struct {
	Variable string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s is not set", ErrMissingCredential, e.Variable)
}

func (e *MissingCredentialError) Unwrap() error {
	return ErrMissingCredential
}

// UserMessage is the blocking text shown on the UI
func (e *MissingCredentialError) UserMessage() string {
	return fmt.Sprintf("API key not found! Please set %s in the .env file.", e.Variable)
}
