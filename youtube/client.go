package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	// SearchURL is the search endpoint of the YouTube Data API v3
	SearchURL = "https://www.googleapis.com/youtube/v3/search"
	// DefaultTimeout applies to the default HTTP client
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "ytsearch"
)

// HTTPClient is the transport used by Client. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs search requests against the YouTube Data API.
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL     string
	userAgent   string
	checkStatus bool
	httpClient  HTTPClient
	logger      zerolog.Logger
}

// NewClient creates a new YouTube search client
func NewClient(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		pooled := cleanhttp.DefaultPooledClient()
		pooled.Timeout = o.timeout
		httpClient = pooled
	}

	return &Client{
		baseURL:     strings.TrimRight(o.baseURL, "?"),
		userAgent:   o.userAgent,
		checkStatus: o.checkStatus,
		httpClient:  httpClient,
		logger:      o.logger,
	}
}

// Search performs a single search round trip.
//
// The request is encoded, sent as a GET and the full body is decoded into a
// SearchListResponse. Nothing is retried. Cancellation follows ctx.
func (c *Client) Search(ctx context.Context, s SearchList) (*SearchListResponse, error) {
	rawQuery, err := s.Encode()
	if err != nil {
		return nil, err
	}

	requestURL := c.baseURL + "?" + rawQuery
	c.logger.Debug().
		Str("url", redactKey(c.baseURL, rawQuery)).
		Msg("Making YouTube API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	chunks, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	body := strings.ToValidUTF8(string(chunks), "\uFFFD")

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(chunks)).
		Msg("Received YouTube API response")

	if c.checkStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, newAPIError(resp.StatusCode, body)
	}

	result, err := decodeResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("items", len(result.Items)).
		Int64("total_results", result.PageInfo.TotalResults).
		Msg("Decoded search response")

	return result, nil
}

// defaultClient serves Perform; its connection pool is shared across calls
var defaultClient = NewClient()

// Perform runs the search with a default client
func (s SearchList) Perform(ctx context.Context) (*SearchListResponse, error) {
	return defaultClient.Search(ctx, s)
}

// PerformWith runs the search with the given client
func (s SearchList) PerformWith(ctx context.Context, client *Client) (*SearchListResponse, error) {
	if client == nil {
		return nil, &ConnectionError{Err: errors.New("nil client")}
	}
	return client.Search(ctx, s)
}

// redactKey rebuilds the request URL with the key parameter masked
func redactKey(baseURL, rawQuery string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return baseURL
	}
	key := values.Get("key")
	if key == "" {
		return baseURL + "?" + rawQuery
	}
	masked := strings.Replace(rawQuery, "key="+url.QueryEscape(key), "key="+APIKey(key).String(), 1)
	return baseURL + "?" + masked
}
