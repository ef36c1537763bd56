// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package httpx provides the shared outbound HTTP plumbing used by both remote
service clients.

It centralizes request construction, bearer authentication, request-ID
correlation, JSON (de)serialization, and the translation of transport-level
failures into the [apperr] taxonomy, so that the catalog and account clients
contain only endpoint knowledge.

Core Responsibilities:

  - At-most-once: no retries, one transport deadline for every call.
  - Correlation: every request carries a generated X-Request-ID, logged on
    failure.
  - Throttling: an optional rate limiter gates request dispatch. The limiter
    waits for a slot; it never re-issues a request.
*/
package httpx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/prashant-2204/glassstream/internal/platform/apperr"
)

// Client issues JSON requests against a single remote service.
type Client struct {
	service string
	baseURL string
	bearer  string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBearerToken attaches a static bearer token to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.bearer = token }
}

// WithLimiter gates request dispatch with the given limiter.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) { c.limiter = limiter }
}

// WithHTTPClient substitutes the underlying transport. Used by tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

/*
New constructs a client for one remote service.

Parameters:
  - service: Short service name used in log attributes and error messages.
  - baseURL: Scheme + host (+ optional path prefix), without a trailing slash.
  - timeout: Transport deadline applied to every request.
  - logger: Structured logger. A nil logger falls back to slog.Default().
  - options: Optional bearer token, limiter, or transport override.
*/
func New(service, baseURL string, timeout time.Duration, logger *slog.Logger, options ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

/*
GetJSON issues a GET request and decodes the JSON response into target.

Parameters:
  - ctx: context.Context
  - operation: Name used in errors and logs (e.g. "catalog_search").
  - path: URL path below the base URL.
  - query: Optional query parameters (may be nil).
  - target: Pointer to the destination struct (may be nil to discard).

Returns:
  - error: apperr.Unreachable, apperr.RemoteStatus, or apperr.MalformedBody
*/
func (c *Client) GetJSON(ctx context.Context, operation, path string, query url.Values, target interface{}) error {
	return c.do(ctx, operation, http.MethodGet, path, query, nil, target)
}

/*
Send issues a request with an optional JSON body and decodes the response.

Description: Used for the write endpoints (PUT/POST/DELETE) of the account
service. A nil payload sends no body.

Parameters:
  - ctx: context.Context
  - operation: Name used in errors and logs.
  - method: HTTP method.
  - path: URL path below the base URL.
  - payload: Value to serialize as the JSON request body (may be nil).
  - target: Pointer to the destination struct (may be nil to discard).

Returns:
  - error: apperr.Unreachable, apperr.RemoteStatus, or apperr.MalformedBody
*/
func (c *Client) Send(ctx context.Context, operation, method, path string, payload, target interface{}) error {
	return c.do(ctx, operation, method, path, nil, payload, target)
}

// do is the single dispatch path shared by every request.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, payload, target interface{}) error {

	// Honor the rate limiter before any work. Wait respects ctx cancellation.
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperr.Unreachable(c.service, err)
		}
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return apperr.MalformedBody(operation, err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return apperr.Unreachable(c.service, err)
	}

	requestID := uuid.NewString()
	request.Header.Set("X-Request-ID", requestID)
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		request.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	response, err := c.http.Do(request)
	if err != nil {
		c.logger.Warn("remote_request_failed",
			slog.String("service", c.service),
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return apperr.Unreachable(c.service, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode == http.StatusNotFound {
		return apperr.NotFound(operation)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		c.logger.Warn("remote_status_rejected",
			slog.String("service", c.service),
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.Int("status", response.StatusCode),
		)
		return apperr.RemoteStatus(operation, response.StatusCode)
	}

	if target == nil {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		c.logger.Warn("remote_body_malformed",
			slog.String("service", c.service),
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return apperr.MalformedBody(operation, err)
	}

	return nil
}
