package payjp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds the resolved configuration for a Client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client

	timeout    time.Duration
	timeoutSet bool

	maxRetries    int
	maxRetriesSet bool

	initialDelay  time.Duration
	maxDelay      time.Duration
	retryDelaySet bool

	logger *zerolog.Logger
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures a Client.
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL. Useful for testing against a
// mock server.
//
//	client, err := payjp.New(key, payjp.WithBaseURL(server.URL))
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient supplies a custom *http.Client, for example one with a
// proxy or instrumented transport. The client is used as given; WithTimeout
// has no effect on it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-attempt HTTP timeout. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
		c.timeoutSet = true
	}
}

// WithMaxRetries sets how many times a rate-limited request is retried
// before giving up. The default is 3. Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *clientConfig) {
		c.maxRetries = n
		c.maxRetriesSet = true
	}
}

// WithRetryDelay sets the backoff window for rate-limit retries. The delay
// starts at initial, doubles with each attempt and is capped at max, with
// jitter applied. The defaults are 500ms and 10s.
func WithRetryDelay(initial, max time.Duration) Option {
	return func(c *clientConfig) {
		c.initialDelay = initial
		c.maxDelay = max
		c.retryDelaySet = true
	}
}

// WithLogger enables debug logging of requests and retries through the
// given zerolog logger. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}
