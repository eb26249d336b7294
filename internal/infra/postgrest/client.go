// Package postgrest is a store backend speaking the PostgREST HTTP API
// (for example a Supabase project). Every table is served by the same
// generic Table adapter.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/boddenberg/cards-api-go/internal/infra/resilience"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("postgrest")

// Client wraps HTTP calls to a PostgREST API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	exec           *resilience.Executor
	logger         *zap.Logger
}

// NewClient creates a PostgREST client. baseURL is the server root; requests
// go to {baseURL}/rest/v1/{table}.
func NewClient(httpClient *http.Client, baseURL, apiKey, serviceRoleKey string, exec *resilience.Executor, logger *zap.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		exec:           exec,
		logger:         logger,
	}
}

// StatusError is a non-2xx response from PostgREST.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("postgrest %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// Ping checks that the API root answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.exec.Read(ctx, func(ctx context.Context) error {
		_, err := c.do(ctx, http.MethodHead, "", nil, "")
		return err
	})
}

// do executes an authenticated request against {baseURL}/rest/v1/{path}.
func (c *Client) do(ctx context.Context, method, path string, payload any, prefer string) (*response, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, path)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", method, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.logger.Error("postgrest: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	req.Header.Set("apikey", c.apiKey)
	if c.serviceRoleKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceRoleKey))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("postgrest: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("postgrest: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("postgrest: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)),
		)
		serr := &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: string(raw)}
		if resp.StatusCode < 500 {
			return nil, resilience.Permanent(serr)
		}
		return nil, serr
	}

	c.logger.Debug("postgrest: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return &response{status: resp.StatusCode, header: resp.Header, body: raw}, nil
}

// parseContentRange extracts the total from a "0-24/3573" or "*/0" header.
func parseContentRange(h string) (int64, error) {
	i := strings.LastIndexByte(h, '/')
	if i < 0 || i == len(h)-1 {
		return 0, fmt.Errorf("malformed Content-Range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("Content-Range %q carries no exact count", h)
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed Content-Range %q: %w", h, err)
	}
	return n, nil
}
