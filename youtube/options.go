package youtube

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient  HTTPClient
	timeout     time.Duration
	baseURL     string
	userAgent   string
	checkStatus bool
	logger      zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     DefaultTimeout,
		baseURL:     SearchURL,
		userAgent:   DefaultUserAgent,
		checkStatus: true,
		logger:      zerolog.Nop(),
	}
}

// WithHTTPClient sets the HTTP client used for requests.
// The client must be safe for concurrent use.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when a custom client is supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithBaseURL overrides the search endpoint URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithStatusCheck controls whether non-2xx responses are reported as APIError.
// When disabled every body is handed to the JSON decoder regardless of status.
func WithStatusCheck(enabled bool) Option {
	return func(o *clientOptions) {
		o.checkStatus = enabled
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
