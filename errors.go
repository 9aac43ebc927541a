package payjp

import (
	"errors"
	"fmt"

	"github.com/payjp/client-go/internal/api"
)

// Sentinel errors for common failure conditions. Use errors.Is to test
// for them regardless of how the concrete error is wrapped.
var (
	// ErrMissingAPIKey is returned by New when the API key is empty or
	// consists only of whitespace.
	ErrMissingAPIKey = api.ErrMissingAPIKey

	// ErrInvalidConfig is returned by New when a client option carries an
	// invalid value, such as a non-positive timeout.
	ErrInvalidConfig = api.ErrInvalidConfig

	// ErrAuthentication matches any error caused by a rejected API key.
	ErrAuthentication = api.ErrAuthentication

	// ErrRateLimited matches any error caused by API rate limiting,
	// including exhausted retries.
	ErrRateLimited = api.ErrRateLimited
)

// PayjpError is implemented by all error types returned by this package.
// It allows callers to distinguish errors originating from the PAY.JP
// client from other errors in their program:
//
//	var pe payjp.PayjpError
//	if errors.As(err, &pe) {
//	    // err came from the PAY.JP client
//	}
type PayjpError interface {
	error
	// PayjpError is a marker method.
	PayjpError()
}

// APIError represents a structured error response from the PAY.JP API,
// such as a declined card or an invalid parameter.
type APIError struct {
	// StatusCode is the HTTP status code reported by the API.
	StatusCode int
	// Type classifies the error, for example "card_error" or
	// "invalid_request_error".
	Type string
	// Message is a human-readable description of the error.
	Message string
	// Code identifies the specific failure, for example "card_declined".
	// Empty when the API did not provide one.
	Code string
	// Param names the request parameter that caused the error. Empty when
	// the API did not provide one.
	Param string
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

// PayjpError marks this as a PAY.JP client error.
func (e *APIError) PayjpError() {}

// Is reports whether this error matches the given sentinel.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthentication:
		return e.StatusCode == 401
	case ErrRateLimited:
		return e.StatusCode == 429
	}
	return false
}

// AuthenticationError is returned when the API rejects the configured
// API key. It is never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// PayjpError marks this as a PAY.JP client error.
func (e *AuthenticationError) PayjpError() {}

// Is reports whether this error matches ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// RateLimitError is returned when the API keeps responding with HTTP 429
// after all retry attempts have been used.
type RateLimitError struct {
	// Attempts is the total number of requests sent, including the
	// initial one.
	Attempts int
}

func (e *RateLimitError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("rate limit exceeded after %d attempts", e.Attempts)
	}
	return "rate limit exceeded"
}

// PayjpError marks this as a PAY.JP client error.
func (e *RateLimitError) PayjpError() {}

// Is reports whether this error matches ErrRateLimited.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError is returned when a request fails before an HTTP response
// is received, for example on connection refusal or timeout.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// PayjpError marks this as a PAY.JP client error.
func (e *NetworkError) PayjpError() {}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when request parameters cannot be encoded or
// a response body cannot be decoded.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// PayjpError marks this as a PAY.JP client error.
func (e *EncodingError) PayjpError() {}

// Unwrap returns the underlying encoding error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// wrapError converts internal transport errors into their public
// counterparts. Sentinel errors pass through unchanged so errors.Is works
// on the result.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Type:       apiErr.Type,
			Message:    apiErr.Message,
			Code:       apiErr.Code,
			Param:      apiErr.Param,
		}
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return &AuthenticationError{Message: authErr.Message}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{Attempts: rateErr.Attempts}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL}
	}

	var encErr *api.EncodingError
	if errors.As(err, &encErr) {
		return &EncodingError{Op: encErr.Op, Err: encErr.Err}
	}

	return err
}
