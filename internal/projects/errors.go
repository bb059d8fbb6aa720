package projects

import "fmt"

// HTTPError reports a non-2xx response from the repository API.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GitHub API responded with %d", e.Status)
}

// NetworkError reports a request that never completed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding repositories: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
