// Package api provides HTTP client functionality for communicating with the
// PAY.JP API. It handles Basic authentication, form-encoded request
// serialization, response classification, and automatic retry with
// exponential backoff for rate-limited requests.
//
// # Request Encoding
//
// GET parameters are sent as a URL query string; POST and DELETE bodies use
// application/x-www-form-urlencoded. Nested parameter structs flatten with
// bracket notation, so a card number is submitted as card[number] rather
// than nested JSON.
//
// # Retry Behavior
//
// Only HTTP 429 responses are retried, up to [RetryConfig.MaxRetries] times
// after the first attempt. The backoff delay for attempt n is drawn
// uniformly from [capped/2, capped], where capped is the exponential delay
// InitialDelay*2^n clamped to MaxDelay. Defaults: 3 retries, 500ms initial
// delay, 10s cap.
//
// # Error Handling
//
// The package defines sentinel errors for common failure conditions:
//
//   - [ErrAuthentication]: the API rejected the key (401).
//   - [ErrRateLimited]: rate limit exceeded after retries (429).
//   - [ErrMissingAPIKey]: no API key was provided.
//   - [ErrInvalidConfig]: the client configuration is unusable.
//
// Structured API failures carry status, type, message, and optional code
// and param fields as [*APIError]:
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == "card_declined" {
//	    // handle the decline
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// issue requests through a single Client simultaneously; the only shared
// state is the immutable configuration and the transport's connection pool.
package api
