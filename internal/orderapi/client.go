package orderapi

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
)

const (
	// IdempotencyKeyHeader carries the checkout attempt id to the order API.
	IdempotencyKeyHeader = "Idempotency-Key"

	maxErrorBody = 4 << 10
)

// ErrNotConfigured is returned when no order API base URL is set.
var ErrNotConfigured = errors.New("order api base url not configured")

// CallOptions are per-call request attributes.
type CallOptions struct {
	// BearerToken is forwarded as the Authorization header when set.
	BearerToken string
	// IdempotencyKey lets the order API collapse retried submissions.
	IdempotencyKey string
	// RequestID is propagated as X-Request-ID.
	RequestID string
}

// Client talks to the order-creation endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTPClient creates a client that uses hc for transport.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// CreateOrder submits req to POST {base}/orders.
func (c *Client) CreateOrder(ctx context.Context, req *OrderRequest, opts CallOptions) (*OrderResponse, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if opts.BearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+opts.BearerToken)
	}
	if opts.IdempotencyKey != "" {
		httpReq.Header.Set(IdempotencyKeyHeader, opts.IdempotencyKey)
	}
	if opts.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", opts.RequestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}

	var out OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &out, nil
}

// errorMessage extracts "message" or "error" from a JSON body, falling
// back to the raw text or the status line.
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
