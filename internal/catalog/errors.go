package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteServiceError is returned for every failed catalog call: transport
// failures (StatusCode 0), non-2xx responses and undecodable bodies.
type RemoteServiceError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("catalog %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("catalog %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("catalog %s failed", e.Op)
	}
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports a rejected API key.
func (e *RemoteServiceError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound reports an unknown movie id.
func (e *RemoteServiceError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRemoteServiceError reports whether err wraps a *RemoteServiceError.
func IsRemoteServiceError(err error) bool {
	var rse *RemoteServiceError
	return errors.As(err, &rse)
}
