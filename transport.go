// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"sort"
	"sync"
)

// Transport types
const (
	TransportHTTP = "http" // GET path protocol, default
	TransportJSON = "json" // JSON-RPC 2.0 over HTTP POST
	TransportGRPC = "grpc" // unary gRPC call
)

// DefaultTransport is the default transport type (HTTP)
const DefaultTransport = TransportHTTP

// evaluator carries requests to a server over one transport.
type evaluator interface {
	Eval(ctx context.Context, req Request) (string, error)
	Close() error
}

type dialFunc func(ctx context.Context, addr string, o *dialOptions) (evaluator, error)
type listenFunc func(addr string, o *serverOptions) (Server, error)

type transportFuncs struct {
	dial   dialFunc
	listen listenFunc
}

var (
	transportsMu sync.RWMutex
	transports   = map[string]transportFuncs{}
)

func init() {
	registerTransport(TransportHTTP, dialHTTP, listenHTTP)
	registerTransport(TransportJSON, dialJSON, listenHTTP)
	registerTransport(TransportGRPC, dialGRPC, listenGRPC)
}

// registerTransport registers a new transport
func registerTransport(name string, dial dialFunc, listen listenFunc) {
	transportsMu.Lock()
	defer transportsMu.Unlock()
	transports[name] = transportFuncs{dial, listen}
}

func lookupTransport(name string) (transportFuncs, bool) {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	t, ok := transports[name]
	return t, ok
}

// AvailableTransports returns the sorted list of available transport types
func AvailableTransports() []string {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	result := make([]string, 0, len(transports))
	for name := range transports {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// HasTransport checks if a transport is available
func HasTransport(name string) bool {
	_, ok := lookupTransport(name)
	return ok
}
