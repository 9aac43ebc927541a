package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingAPIKey indicates no API key was provided.
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrInvalidConfig indicates the client configuration is unusable.
	ErrInvalidConfig = errors.New("invalid client configuration")
	// ErrAuthentication indicates the API rejected the key.
	ErrAuthentication = errors.New("invalid API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a structured error returned by the PAY.JP API, or a
// synthesized one when the response body could not be parsed. In the
// synthesized case Type is "unknown_error" and Message carries the raw
// HTTP status.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Code       string
	Param      string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Message)
	if e.Code != "" {
		msg += fmt.Sprintf(" (code: %s)", e.Code)
	}
	if e.Param != "" {
		msg += fmt.Sprintf(" (param: %s)", e.Param)
	}
	return msg
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrAuthentication
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// AuthError represents an HTTP 401 response. The response body is never
// parsed for this case; Message is fixed at construction.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthentication
}

// RateLimitError represents an HTTP 429 response. Attempts is the total
// number of attempts made before the error was surfaced; it is zero while
// the retry loop is still running.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("rate limit exceeded after %d attempts", e.Attempts)
	}
	return "rate limit exceeded"
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError represents a network-level failure: DNS, connection reset,
// TLS, or a per-attempt timeout. Never retried.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EncodingError represents a failure to encode request parameters or decode
// a response body. Never retried.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}
