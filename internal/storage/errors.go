package storage

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork    = errors.New("backend unavailable")
	ErrValidation = errors.New("backend rejected payload")
	ErrNotFound   = errors.New("record not found")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s failed with status code %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s failed with status code %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap maps the status onto the error taxonomy.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrNetwork
	}
}

// BackendMessage returns the message the backend attached to err, if any.
func BackendMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
