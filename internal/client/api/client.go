// Package api is the typed client for the canteen ordering backend. It
// owns the authenticated HTTP pipeline (token injection, 401 refresh and
// retry-once) and exposes one method per backend endpoint. Every method
// returns (value, error); failures are always an *Error carrying the
// taxonomy in Kind.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanaol/canteen/internal/client/auth"
	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/logging"
)

const maxResponseBytes = 4 << 20

// Config carries the knobs the client needs; the base URL always comes
// from configuration, never from code.
type Config struct {
	// BaseURL is the API root, e.g. "http://192.168.1.11:8000/api".
	BaseURL string
	// Timeout bounds each request including the one 401-triggered retry.
	Timeout time.Duration
	Logger  logging.Logger
}

// Client dispatches all backend calls through one authenticated pipeline.
type Client struct {
	baseURL string
	http    *http.Client
	store   *credentials.Store
	tokens  *auth.Manager
	log     logging.Logger
}

// New wires the client, its token manager, and the interceptor transport
// around the given credential store.
func New(store *credentials.Store, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	// The refresh call uses a plain client: it must not recurse into the
	// authenticated transport.
	tokens := auth.NewManager(
		store,
		baseURL+"/accounts/token/refresh/",
		&http.Client{Timeout: cfg.Timeout},
		cfg.Logger,
	)

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &authTransport{
				base:   http.DefaultTransport,
				store:  store,
				tokens: tokens,
			},
		},
		store:  store,
		tokens: tokens,
		log:    cfg.Logger,
	}, nil
}

// Tokens exposes the token lifecycle manager (the CLI asks it for a valid
// token before gated screens).
func (c *Client) Tokens() *auth.Manager { return c.tokens }

// do builds a JSON request, runs it through the authenticated pipeline,
// and decodes the answer into out (which may be nil). All failures come
// back as *Error. extra headers are merged into the request.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, extra ...http.Header) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, h := range extra {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode >= 400 {
		apiErr := errorFromResponse(resp.StatusCode, data)
		c.log.Warn(ctx, "api request failed",
			"method", method, "path", path, "status", resp.StatusCode, "kind", apiErr.Kind.String())
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return decodeError(err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
