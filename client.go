// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"
)

// Client evaluates requests against one server. Every Eval is exactly one
// blocking round trip; there are no retries and no timeout beyond what the
// underlying transport and ctx impose.
type Client struct {
	ev        evaluator
	transport string
}

// Eval sends req and returns the raw success body.
func (c *Client) Eval(ctx context.Context, req Request) (string, error) {
	return c.ev.Eval(ctx, req)
}

// Transport returns the transport type the client was dialed with.
func (c *Client) Transport() string { return c.transport }

// Close releases the client's connection, if it holds one.
func (c *Client) Close() error { return c.ev.Close() }

// Server is the protocol-agnostic server interface.
type Server interface {
	// Serve starts serving requests (blocks until context cancelled or Close)
	Serve(ctx context.Context) error

	// Close stops the server
	Close() error

	// Addr returns the server's listen address
	Addr() string
}

// DialOption configures client connections
type DialOption func(*dialOptions)

type dialOptions struct {
	transport  string // "http", "json", "grpc"
	httpClient *http.Client
	base       func() string
}

// WithTransport explicitly sets the transport type
func WithTransport(t string) DialOption {
	return func(o *dialOptions) { o.transport = t }
}

// WithHTTPClient sets the HTTP client used by the http and json transports.
// A nil client means http.DefaultClient.
func WithHTTPClient(c *http.Client) DialOption {
	return func(o *dialOptions) {
		if c == nil {
			c = http.DefaultClient
		}
		o.httpClient = c
	}
}

// ServerOption configures servers
type ServerOption func(*serverOptions)

type serverOptions struct {
	transport string
}

// WithServerTransport explicitly sets the transport type for the server
func WithServerTransport(t string) ServerOption {
	return func(o *serverOptions) { o.transport = t }
}

// Base address shared by the default client and StartServer. Reads and
// writes are serialized, but a request that is in flight while the address
// changes may target either address.
var (
	baseMu   sync.RWMutex
	baseAddr string
)

// SetBaseAddress sets the process-wide host:port used by DefaultClient.
// Call it once before the first operation.
func SetBaseAddress(addr string) {
	baseMu.Lock()
	baseAddr = addr
	baseMu.Unlock()
}

// BaseAddress returns the process-wide host:port, or "" if unset.
func BaseAddress() string {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return baseAddr
}

var defaultClient = &Client{
	ev:        &httpEvaluator{base: BaseAddress, client: http.DefaultClient},
	transport: TransportHTTP,
}

// DefaultClient returns the client used by values created with New. It
// reads BaseAddress on every call.
func DefaultClient() *Client { return defaultClient }

// CleanlyCloseBody drains and closes an HTTP response body so the
// connection can be reused.
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

func fixedBase(addr string) func() string {
	return func() string { return addr }
}

func resolveBase(base func() string) (string, error) {
	addr := base()
	if addr == "" {
		return "", ErrNoBaseAddress
	}
	return addr, nil
}

// httpEvaluator speaks the GET path protocol.
type httpEvaluator struct {
	base   func() string
	client *http.Client
}

func dialHTTP(_ context.Context, addr string, o *dialOptions) (evaluator, error) {
	return &httpEvaluator{base: o.base, client: o.httpClient}, nil
}

func (h *httpEvaluator) Eval(ctx context.Context, req Request) (string, error) {
	addr, err := resolveBase(h.base)
	if err != nil {
		return "", err
	}
	uri := "http://" + addr + req.Path()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", &NetworkError{URL: uri, Err: errors.Wrap(err, "fail to create request")}
	}
	resp, err := h.client.Do(request)
	if err != nil {
		return "", &NetworkError{URL: uri, Err: err}
	}
	defer CleanlyCloseBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: uri, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "fail to read response")}
	}
	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: uri, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}

func (h *httpEvaluator) Close() error { return nil }
