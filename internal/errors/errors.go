package errors

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnsafeFood    = errors.New("food is unsafe to redistribute")
	ErrExternalAPI   = errors.New("external API error")
	ErrDatabaseError = errors.New("database error")
	ErrInternalError = errors.New("internal error")
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is allows ValidationError to match ErrInvalidInput
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// APIError represents errors from a remote directory source
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Message)
}

// Is allows APIError to match ErrExternalAPI
func (e APIError) Is(target error) bool {
	return target == ErrExternalAPI
}

// CityNotFoundError is returned when a city has no known center coordinates
type CityNotFoundError struct {
	City string
}

func (e CityNotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

// Is allows comparison using errors.Is
func (e CityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
