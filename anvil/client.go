package anvil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/belfry/go-anvil/internal/logging"
)

const (
	defaultBaseURL = "https://app.useanvil.com"
	graphqlPath    = "/graphql"

	defaultTimeout = 60 * time.Second
)

// Credentials authenticates requests to the Anvil API. The API key is sent as
// the username of an HTTP basic auth header.
type Credentials struct {
	APIKey string
}

// Client is the HTTP transport for the Anvil API. It owns one http.Client, a
// token-bucket limiter matching the remote quota, and a retry policy for
// transient failures (HTTP 429 and 5xx). Retries never happen for 4xx
// rejections.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
	limiter    *rate.Limiter
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. a mock server
// in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout caps each HTTP attempt. Only applies to the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRequestRate overrides the client-side throttle (requests per second and
// burst). The default matches the documented 40-requests-per-5-seconds quota.
func WithRequestRate(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// WithMaxRetries sets how many times a transient failure is retried.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient builds a Client from explicit credentials. An empty API key fails
// with ErrNoAPIKey.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	c := &Client{
		creds:      creds,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logging.Discard(),
		limiter:    rate.NewLimiter(rate.Limit(8), 40),
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type httpResult struct {
	status int
	header http.Header
	body   []byte
}

// send performs one rate-limited, retried HTTP exchange and returns the final
// 2xx result. Non-2xx responses and transport failures come back as typed
// errors carrying op.
func (c *Client) send(ctx context.Context, op, method, url, contentType string, body []byte) (*httpResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var res httpResult
	attempt := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: %w", op, err))
		}
		req.SetBasicAuth(c.creds.APIKey, "")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Warn(ctx, "request failed", "op", op, "err", err)
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		c.log.Debug(ctx, "api response", "op", op, "status", resp.StatusCode, "bytes", len(data))

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return &APIError{Op: op, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(&APIError{Op: op, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))})
		}

		res = httpResult{status: resp.StatusCode, header: resp.Header, body: data}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return &res, nil
}

type gqlRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// query runs one GraphQL exchange and returns the raw "data" member. A GraphQL
// errors array, even in a 200 response, becomes an *APIError.
func (c *Client) query(ctx context.Context, op, query string, variables any) (json.RawMessage, error) {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	res, err := c.send(ctx, op, http.MethodPost, c.baseURL+graphqlPath, "application/json", body)
	if err != nil {
		return nil, err
	}

	var parsed gqlResponse
	if err := json.Unmarshal(res.body, &parsed); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if len(parsed.Errors) > 0 {
		return nil, &APIError{Op: op, StatusCode: res.status, Errors: parsed.Errors}
	}
	return parsed.Data, nil
}

// Do executes an arbitrary GraphQL query or mutation and returns the raw
// "data" member of the response. It is the escape hatch for API features the
// typed methods do not cover yet.
func (c *Client) Do(ctx context.Context, query string, variables any) (json.RawMessage, error) {
	return c.query(ctx, "graphql", query, variables)
}
