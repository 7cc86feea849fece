package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError wraps a transport failure reaching the backend API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError carries the per-field messages a 4xx response included
// under the "errors" key.
type ValidationError struct {
	Status int
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backend rejected %d field(s)", len(e.Fields))
}

// APIError is any other non-2xx response. Message holds the first of the
// "message", "err" and "error" body keys that was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
