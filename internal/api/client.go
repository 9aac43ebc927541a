package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.pay.jp/v1"

	// DefaultTimeout bounds each HTTP attempt. Retried attempts each get
	// the full timeout; it does not cover the whole retry sequence.
	DefaultTimeout = 30 * time.Second

	// Version is the library version reported in the User-Agent header.
	Version = "0.1.0"

	userAgent = "payjp-go/" + Version
)

// Client is the low-level HTTP client for the PAY.JP API. It owns
// authentication, parameter encoding, response classification, and the
// rate-limit retry loop. The typed resource services in the root package
// are thin wrappers over its four request primitives.
type Client struct {
	baseURL    string
	apiKey     string
	authHeader string
	timeout    time.Duration
	httpClient *http.Client
	retry      *RetryConfig
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig sets the retry policy for rate-limited requests.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithHTTPClient sets a custom HTTP client. The client is used as-is;
// its Timeout takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for debug-level request tracing.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client. The key is trimmed of surrounding
// whitespace before storage; keys read from environment variables often
// carry a trailing newline.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		retry:   DefaultRetryConfig(),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.timeout)
	}
	if c.retry == nil {
		c.retry = DefaultRetryConfig()
	}
	if c.retry.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries must not be negative, got %d", ErrInvalidConfig, c.retry.MaxRetries)
	}
	if c.retry.InitialDelay <= 0 {
		return nil, fmt.Errorf("%w: initial retry delay must be positive, got %v", ErrInvalidConfig, c.retry.InitialDelay)
	}
	if c.retry.MaxDelay < c.retry.InitialDelay {
		return nil, fmt.Errorf("%w: max retry delay %v is below initial delay %v", ErrInvalidConfig, c.retry.MaxDelay, c.retry.InitialDelay)
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, c.baseURL, err)
	}

	// Basic auth with the API key as username and an empty password.
	c.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(c.apiKey+":"))

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Retry returns the configured retry policy.
func (c *Client) Retry() *RetryConfig {
	return c.retry
}

// do dispatches one logical API call: it sends the request, classifies the
// response, and retries on rate-limiting according to the retry policy.
// Attempts are strictly sequential; every other failure returns immediately.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, result interface{}) error {
	for attempt := 0; ; attempt++ {
		err := c.send(ctx, method, path, params, result)
		if err == nil {
			return nil
		}

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			return err
		}
		if attempt >= c.retry.MaxRetries {
			rateErr.Attempts = attempt + 1
			return rateErr
		}

		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("attempt", attempt).
			Msg("rate limited, backing off")

		if err := c.retry.Wait(ctx, attempt); err != nil {
			return err
		}
	}
}

// send performs a single request/response cycle.
func (c *Client) send(ctx context.Context, method, path string, params url.Values, result interface{}) error {
	reqURL := c.baseURL + path
	var body io.Reader
	if len(params) > 0 {
		if method == http.MethodGet {
			reqURL += "?" + params.Encode()
		} else {
			body = strings.NewReader(params.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return &NetworkError{Err: err, URL: reqURL}
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: reqURL}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("request completed")

	return c.decodeResponse(resp, result)
}

// decodeResponse maps an HTTP response to a decoded value or a classified
// error. Only 429 produces a retryable error; 401 is terminal with a fixed
// message and its body is never parsed.
func (c *Client) decodeResponse(resp *http.Response, result interface{}) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if result == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &EncodingError{Op: "decode response", Err: err}
		}
		return nil
	case http.StatusTooManyRequests:
		return &RateLimitError{}
	case http.StatusUnauthorized:
		return &AuthError{Message: "Invalid API key"}
	default:
		return parseErrorResponse(resp)
	}
}

// parseErrorResponse reads a non-2xx body and extracts the structured API
// error. An unparseable body yields a synthesized error carrying the raw
// status code.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Type != "" {
		return &APIError{
			StatusCode: envelope.Error.Status,
			Type:       envelope.Error.Type,
			Message:    envelope.Error.Message,
			Code:       envelope.Error.Code,
			Param:      envelope.Error.Param,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Type:       "unknown_error",
		Message:    fmt.Sprintf("HTTP error: %d", resp.StatusCode),
	}
}
