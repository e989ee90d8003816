// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	ctx := testContext(t)
	c := newTestClient(t, WithTransport(TransportJSON))
	assert.Equal(t, TransportJSON, c.Transport())

	sum, err := NewWith(c, uint64(6)).Add(ctx, NewWith(c, uint64(7)))
	require.NoError(t, err)
	assert.Equal(t, uint64(13), sum.Get())

	shr, err := Shr(ctx, NewWith(c, int16(16)), uint8(2))
	require.NoError(t, err)
	assert.Equal(t, int16(4), shr.Get())

	o, err := NewWith(c, 1.0).Cmp(ctx, NewWith(c, 2.0))
	require.NoError(t, err)
	assert.Equal(t, Less, o)

	inf, err := NewWith(c, 1.0).Div(ctx, NewWith(c, 0.0))
	require.NoError(t, err)
	assert.Equal(t, "inf", inf.String())
}

func TestJSONErrors(t *testing.T) {
	ctx := testContext(t)
	c := newTestClient(t, WithTransport(TransportJSON))

	_, err := NewWith(c, uint32(1)).Div(ctx, NewWith(c, uint32(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork), "%v", err)
	assert.Contains(t, err.Error(), "divide by zero")

	_, err = c.Eval(ctx, Request{Op: OpBitAnd, Type: F32, LHS: "1.0", RHS: "2.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork), "%v", err)
	assert.Contains(t, err.Error(), `invalid type "f32" for bitand`)
}

func TestJSONDecodeError(t *testing.T) {
	ctx := testContext(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","result":{"result":"banana"},"id":1}`))
	}))
	defer ts.Close()
	c, err := Dial(ctx, strings.TrimPrefix(ts.URL, "http://"), WithTransport(TransportJSON))
	require.NoError(t, err)

	_, err = NewWith(c, uint8(1)).Add(ctx, NewWith(c, uint8(1)))
	assert.True(t, errors.Is(err, ErrResponseDecode), "%v", err)
}

func TestMathService(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, JSONRPCPath, nil)
	var reply EvalReply
	err := MathService{}.Eval(r, &EvalArgs{Op: "shl", Type: "u8", ShiftType: "i64", LHS: "1", RHS: "3"}, &reply)
	require.NoError(t, err)
	assert.Equal(t, "8", reply.Result)

	err = MathService{}.Eval(r, &EvalArgs{Op: "add", Type: "xyz", LHS: "1", RHS: "2"}, &reply)
	var jerr *json2.Error
	require.True(t, errors.As(err, &jerr))
	assert.Equal(t, json2.E_BAD_PARAMS, jerr.Code)
	assert.Equal(t, `invalid type "xyz"`, jerr.Message)

	err = MathService{}.Eval(r, &EvalArgs{Op: "rem", Type: "u16", LHS: "1", RHS: "0"}, &reply)
	require.True(t, errors.As(err, &jerr))
	assert.Equal(t, json2.E_SERVER, jerr.Code)
}

func TestEvalArgsIgnoresShiftTypeOutsideShifts(t *testing.T) {
	req, err := (&EvalArgs{Op: "add", Type: "u8", ShiftType: "u8", LHS: "1", RHS: "2"}).Request()
	require.NoError(t, err)
	assert.Equal(t, Request{Op: OpAdd, Type: U8, LHS: "1", RHS: "2"}, req)
	assert.Equal(t, "/add/u8/1/2", (&EvalArgs{Op: "add", Type: "u8", LHS: "1", RHS: "2"}).String())
}

func TestJSONRequiresBaseAddress(t *testing.T) {
	c, err := Dial(context.Background(), "", WithTransport(TransportJSON))
	require.NoError(t, err)
	_, err = NewWith(c, uint8(1)).Add(context.Background(), NewWith(c, uint8(1)))
	assert.True(t, errors.Is(err, ErrNoBaseAddress))
}
