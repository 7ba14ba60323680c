package depo

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/machinebox/graphql"

	"github.com/hephix/backend/internal/logging"
)

const (
	// DefaultEndpoint is the storefront GraphQL endpoint.
	DefaultEndpoint = "https://online.depo.lv/graphql"

	// DefaultTimeout bounds the outbound search call.
	DefaultTimeout = 10 * time.Second

	minLimit = 1
	maxLimit = 50
)

// Client performs product searches against the storefront. It is safe for
// concurrent use and holds no per-request state.
type Client struct {
	gql     *graphql.Client
	timeout time.Duration
	log     logging.Logger
}

// NewClient builds a search client for the given endpoint. An empty endpoint
// falls back to DefaultEndpoint, a non-positive timeout to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration, log logging.Logger) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		gql:     graphql.NewClient(endpoint),
		timeout: timeout,
		log:     log,
	}
}

// productsEnvelope captures the data payload of the products operation. The
// inner document stays raw because the storefront's node shapes are loose
// (see parse.go).
type productsEnvelope struct {
	Products json.RawMessage `json:"products"`
}

// Search runs one product search. The query must be non-empty after
// trimming; limit is silently clamped into [1,50]. An empty upstream result
// set is a zero-length SearchResult, not an error. A single attempt is made,
// there is no retry.
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return SearchResult{}, &InvalidInputError{Reason: "search query cannot be empty"}
	}
	limit = clampLimit(limit)

	req := graphql.NewRequest(productsQuery)
	req.Var("searchString", trimmed)
	req.Var("rows", limit)
	req.Var("start", 0)
	req.Header.Set("Accept", "application/json")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var envelope productsEnvelope
	if err := c.gql.Run(ctx, req, &envelope); err != nil {
		classified := c.classify(err)
		c.log.Error(classified, "product search failed", "query", trimmed, "elapsed", time.Since(start).String())
		return SearchResult{}, classified
	}

	result := parseProducts(envelope.Products, limit)
	c.log.Debug("product search completed",
		"query", trimmed,
		"results", len(result.Products),
		"totalCount", result.TotalCount,
		"elapsed", time.Since(start).String(),
	)
	return result, nil
}

func clampLimit(limit int) int {
	if limit < minLimit {
		return minLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// classify sorts transport failures from upstream-reported ones. Timeouts,
// cancellations and connection errors mean the endpoint was never usefully
// reached; everything else is a reply the upstream produced.
func (c *Client) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &UnavailableError{Cause: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &UnavailableError{Cause: err}
	}
	return &UpstreamError{Message: err.Error(), Cause: err}
}
