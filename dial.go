// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Dial creates a client for the server at addr (host:port) using the
// default transport (HTTP). Use WithTransport to select another one.
func Dial(ctx context.Context, addr string, opts ...DialOption) (*Client, error) {
	o := &dialOptions{
		transport:  DefaultTransport,
		httpClient: http.DefaultClient,
		base:       fixedBase(addr),
	}
	for _, opt := range opts {
		opt(o)
	}

	t, ok := lookupTransport(o.transport)
	if !ok {
		return nil, errors.Errorf("unknown transport: %s", o.transport)
	}
	ev, err := t.dial(ctx, addr, o)
	if err != nil {
		return nil, err
	}
	return &Client{ev: ev, transport: o.transport}, nil
}

// Listen creates a server bound to addr using the default transport (HTTP).
// The HTTP server answers both the GET path protocol and JSON-RPC.
func Listen(addr string, opts ...ServerOption) (Server, error) {
	o := &serverOptions{
		transport: DefaultTransport,
	}
	for _, opt := range opts {
		opt(o)
	}

	t, ok := lookupTransport(o.transport)
	if !ok {
		return nil, errors.Errorf("unknown transport: %s", o.transport)
	}
	return t.listen(addr, o)
}

// StartServer binds an HTTP server to addr, points the process-wide base
// address at it and serves in the background until Close.
func StartServer(addr string) (Server, error) {
	s, err := Listen(addr)
	if err != nil {
		return nil, err
	}
	SetBaseAddress(s.Addr())
	go func() {
		if err := s.Serve(context.Background()); err != nil {
			log.Errorf("serve %s: %v", s.Addr(), err)
		}
	}()
	return s, nil
}
