// Package tracker is a client for a GraphQL issue-tracking API.
//
// All parameterized operations use GraphQL variables rather than values
// interpolated into query strings. Team identifiers given to the search and
// create operations may be a UUID, a short key ("ENG"), or a full name
// ("Engineering"); resolution and validation of those identifiers is the
// job of TeamResolver.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

// DefaultEndpoint is used when no endpoint is configured.
const DefaultEndpoint = "https://api.tracker.example/graphql"

// Default retry configuration for rate limit handling.
const (
	defaultMaxRetries     = 3
	defaultBaseRetryDelay = 500 * time.Millisecond
	defaultMaxRetryDelay  = 5 * time.Second
)

// Gateway executes a raw GraphQL operation. It is the single seam between
// the typed client and the wire: tests substitute it, and the resolver
// depends on nothing else.
type Gateway interface {
	RawRequest(ctx context.Context, query string, variables any, result any) error
}

// RetryConfig holds retry settings for rate limit and transient errors.
type RetryConfig struct {
	MaxRetries     int
	BaseRetryDelay time.Duration
	MaxRetryDelay  time.Duration
}

// HTTPGateway implements Gateway over HTTP POST.
type HTTPGateway struct {
	endpoint   string
	token      string
	httpClient *http.Client

	// Retry configuration (uses defaults if nil)
	retryConfig *RetryConfig
}

// NewHTTPGateway creates a gateway for the given endpoint. The token is
// sent as the Authorization header on every request.
func NewHTTPGateway(endpoint, token string) *HTTPGateway {
	return &HTTPGateway{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{},
	}
}

func (g *HTTPGateway) getRetryConfig() RetryConfig {
	if g.retryConfig != nil {
		return *g.retryConfig
	}
	return RetryConfig{
		MaxRetries:     defaultMaxRetries,
		BaseRetryDelay: defaultBaseRetryDelay,
		MaxRetryDelay:  defaultMaxRetryDelay,
	}
}

type graphqlRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	// Variables serialize exactly as given. Callers that rely on the
	// explicit-null contract (see teamLookupVariables) pass types whose
	// fields never use omitempty.
	Variables any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage    `json:"data"`
	Errors []GraphQLErrorItem `json:"errors"`
}

// RawRequest posts a GraphQL document with its variables and decodes the
// data payload into result. GraphQL-level errors are returned as a
// *GraphQLError. HTTP 429 and 5xx responses are retried with capped
// exponential backoff; cancellation is honored via ctx.
func (g *HTTPGateway) RawRequest(ctx context.Context, query string, variables any, result any) error {
	payload := graphqlRequest{
		Query:         query,
		OperationName: operationName(query),
		Variables:     variables,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	cfg := g.getRetryConfig()

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := min(cfg.BaseRetryDelay*time.Duration(1<<(attempt-1)), cfg.MaxRetryDelay)
			// Add jitter (0-25% of delay)
			delay += time.Duration(rand.Int64N(int64(delay / 4)))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", g.token)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("executing request: %w", err)
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &RateLimitError{Status: resp.StatusCode, RetryAfter: resp.Header.Get("Retry-After")}
			continue
		case resp.StatusCode >= 500:
			lastErr = &TransientError{Status: resp.StatusCode}
			continue
		case resp.StatusCode >= 400:
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
		}

		var gqlResp graphqlResponse
		if err := json.Unmarshal(respBody, &gqlResp); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		if len(gqlResp.Errors) > 0 {
			return &GraphQLError{Errors: gqlResp.Errors}
		}

		if result != nil && len(gqlResp.Data) > 0 {
			if err := json.Unmarshal(gqlResp.Data, result); err != nil {
				return fmt.Errorf("decoding data: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// Client provides typed operations over a Gateway.
type Client struct {
	gw    Gateway
	teams *TeamResolver
}

// New creates a client over an arbitrary gateway.
func New(gw Gateway) *Client {
	return &Client{gw: gw, teams: NewTeamResolver(gw)}
}

// NewHTTP creates a client talking HTTP to the given endpoint.
func NewHTTP(endpoint, token string) *Client {
	return New(NewHTTPGateway(endpoint, token))
}

// RawRequest exposes the underlying gateway for passthrough queries.
func (c *Client) RawRequest(ctx context.Context, query string, variables any, result any) error {
	return c.gw.RawRequest(ctx, query, variables, result)
}
