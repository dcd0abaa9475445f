package repositories

import (
	"fmt"
	"net/http"
)

// NetworkError reports a transport failure or a non-success HTTP status that
// remained after the forecast to current-conditions fallback.
type NetworkError struct {
	URL        string
	StatusCode int
	Status     string
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Unauthorized is true for a 401 answer, the signal for the fallback request.
func (e *NetworkError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// MalformedResponseError reports a body that is not a JSON object. Missing
// fields inside a valid object are not errors.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
