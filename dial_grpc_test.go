// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGRPCClient(t *testing.T) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server, err := Listen("127.0.0.1:0", WithServerTransport(TransportGRPC))
	require.NoError(t, err)
	t.Cleanup(func() { server.Close() })

	errc := make(chan error, 1)
	go func() { errc <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errc:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("Serve did not return after cancel")
		}
	})

	c, err := Dial(ctx, server.Addr(), WithTransport(TransportGRPC))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGRPCRoundTrip(t *testing.T) {
	ctx := testContext(t)
	c := newGRPCClient(t)
	assert.Equal(t, TransportGRPC, c.Transport())

	prod, err := NewWith(c, uint64(6)).Mul(ctx, NewWith(c, uint64(7)))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), prod.Get())

	shl, err := Shl(ctx, NewWith(c, uint8(1)), uint8(3))
	require.NoError(t, err)
	assert.Equal(t, uint8(8), shl.Get())

	eq, err := NewWith(c, int32(5)).Eq(ctx, NewWith(c, int32(6)))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestGRPCErrors(t *testing.T) {
	ctx := testContext(t)
	c := newGRPCClient(t)

	_, err := NewWith(c, uint32(1)).Div(ctx, NewWith(c, uint32(0)))
	var nerr *NetworkError
	require.True(t, errors.As(err, &nerr), "%v", err)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, http.StatusInternalServerError, nerr.StatusCode)

	_, err = c.Eval(ctx, Request{Op: OpShl, Type: U8, ShiftType: F64, LHS: "1", RHS: "2"})
	require.True(t, errors.As(err, &nerr), "%v", err)
	assert.Equal(t, http.StatusBadRequest, nerr.StatusCode)
	assert.Equal(t, `invalid type "f64" for shl`, nerr.Body)
}
