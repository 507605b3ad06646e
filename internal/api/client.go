// Package api is the only gateway to the remote sandbox API. It attaches the
// bearer credential centrally, normalizes the loose wire schema at the
// boundary and translates failures into the two kinds the views care about:
// a server-reported message or a plain connectivity error.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/pager"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
)

// Error is a failure the API itself reported with a JSON body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Config configures the remote API client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the sandbox transactions API. Calls go through a circuit
// breaker so a flapping backend fails fast instead of hanging every view.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	cache   *pageCache
}

// New builds a Client. The credential is attached here once; call sites
// never handle tokens.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "sandbox-api",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state changed", "circuit", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		http:    rc,
		breaker: breaker,
		cache:   newPageCache(),
	}
}

// TransactionPage is one fetched page of normalized records plus the
// pagination block the server reported.
type TransactionPage struct {
	Records    []record.Record
	Pagination pager.State
}

type listResponse struct {
	Data       []record.Wire `json:"data"`
	Pagination pager.State   `json:"pagination"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// ListTransactions fetches one page of transactions. Pages are served from
// the client cache when present; InvalidateCache forces the next call to hit
// the network.
func (c *Client) ListTransactions(ctx context.Context, page, limit int) (*TransactionPage, error) {
	if cached, ok := c.cache.get(page, limit); ok {
		return cached, nil
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.fetchPage(ctx, page, limit)
	})
	if err != nil {
		return nil, err
	}

	fetched := result.(*TransactionPage)
	c.cache.set(page, limit, fetched)

	return fetched, nil
}

func (c *Client) fetchPage(ctx context.Context, page, limit int) (*TransactionPage, error) {
	var (
		body   listResponse
		apiErr errorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&body).
		SetError(&apiErr).
		Get("/api/v1/transactions")
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if resp.IsError() {
		return nil, &Error{StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &Error{StatusCode: resp.StatusCode()}
	}

	return &TransactionPage{
		Records:    record.NormalizeAll(body.Data),
		Pagination: body.Pagination,
	}, nil
}

// InvalidateCache drops every cached page. The transactions view calls this
// on explicit refresh.
func (c *Client) InvalidateCache() {
	c.cache.clear()
}
