// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRequests enumerates every (operation, type, shift type) combination.
func validRequests(lhs, rhs string) []Request {
	var reqs []Request
	for _, op := range Operations {
		for _, typ := range OperandTypes {
			if !op.Accepts(typ) {
				continue
			}
			if op.Family() != Shift {
				reqs = append(reqs, Request{Op: op, Type: typ, LHS: lhs, RHS: rhs})
				continue
			}
			for _, s := range IntegerTypes {
				reqs = append(reqs, Request{Op: op, Type: typ, ShiftType: s, LHS: lhs, RHS: rhs})
			}
		}
	}
	return reqs
}

func TestPathRoundTrip(t *testing.T) {
	reqs := validRequests("1", "2")
	// 5 arithmetic + 2 comparison over 10 types, 3 bitwise over 8, 2 shifts over 8x8
	assert.Len(t, reqs, 7*10+3*8+2*8*8)
	reqs = append(reqs, validRequests("-1.5e3", "a/b c")...)
	for _, req := range reqs {
		got, err := ParsePath(req.Path())
		require.NoError(t, err, req.Path())
		assert.Equal(t, req, got)
	}
}

func TestRequestPath(t *testing.T) {
	assert.Equal(t, "/add/u32/6/7", Request{Op: OpAdd, Type: U32, LHS: "6", RHS: "7"}.Path())
	assert.Equal(t, "/shl/u8/i64/1/3", Request{Op: OpShl, Type: U8, ShiftType: I64, LHS: "1", RHS: "3"}.Path())
	assert.Equal(t, "/eq/f64/a%2Fb/1", Request{Op: OpEq, Type: F64, LHS: "a/b", RHS: "1"}.Path())
}

func TestParsePathErrors(t *testing.T) {
	cases := []struct {
		path string
		kind error
		msg  string
	}{
		{"/", ErrInvalidOperation, `invalid operation ""`},
		{"/pow/u8/1/2", ErrInvalidOperation, `invalid operation "pow"`},
		{"/ADD/u8/1/2", ErrInvalidOperation, `invalid operation "ADD"`},
		{"/add/u8/1", ErrRequestMalformed, "wrong number of path segments for add: expected 4, got 3"},
		{"/add/u8/1/2/", ErrRequestMalformed, "wrong number of path segments for add: expected 4, got 5"},
		{"/shl/u8/1/2", ErrRequestMalformed, "wrong number of path segments for shl: expected 5, got 4"},
		{"/add/xyz/1/2", ErrInvalidOperandType, `invalid type "xyz"`},
		{"/bitand/f32/1.0/2.0", ErrInvalidOperandType, `invalid type "f32" for bitand`},
		{"/shr/f64/u8/1/2", ErrInvalidOperandType, `invalid type "f64" for shr`},
		{"/shl/u8/f32/1/2", ErrInvalidOperandType, `invalid type "f32" for shl`},
		{"/shl/u8/usize/1/2", ErrInvalidOperandType, `invalid type "usize"`},
		{"/add/u8/%zz/1", ErrRequestMalformed, `invalid path segment "%zz"`},
	}
	for _, c := range cases {
		_, err := ParsePath(c.path)
		require.Error(t, err, c.path)
		assert.True(t, errors.Is(err, c.kind), "%s: %v", c.path, err)
		assert.Equal(t, c.msg, err.Error(), c.path)
		assert.True(t, IsRequestError(err), c.path)
	}
}

func TestNewRequestShift(t *testing.T) {
	req, err := NewRequest("shr", "i16", "u8", "16", "2")
	require.NoError(t, err)
	assert.Equal(t, Request{Op: OpShr, Type: I16, ShiftType: U8, LHS: "16", RHS: "2"}, req)

	req, err = NewRequest("cmp", "f64", "1.0", "2.0")
	require.NoError(t, err)
	assert.Equal(t, NoType, req.ShiftType)
}
