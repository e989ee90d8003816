// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperandType(t *testing.T) {
	for _, typ := range OperandTypes {
		got, ok := ParseOperandType(typ.String())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}
	for _, name := range []string{"", "U8", "u128", "usize", "f16", "xyz"} {
		_, ok := ParseOperandType(name)
		assert.False(t, ok, name)
	}
}

func TestOperandTypeClasses(t *testing.T) {
	assert.Len(t, IntegerTypes, 8)
	assert.Len(t, OperandTypes, 10)
	for _, typ := range IntegerTypes {
		assert.True(t, typ.IsInteger(), typ.String())
		assert.False(t, typ.IsFloat(), typ.String())
	}
	assert.True(t, I8.IsSigned())
	assert.False(t, U64.IsSigned())
	assert.True(t, F32.IsFloat())
	assert.False(t, NoType.Valid())
	assert.Equal(t, 16, I16.Bits())
	assert.Equal(t, 32, F32.Bits())
	assert.Equal(t, 64, U64.Bits())
}

func TestOperationFamilies(t *testing.T) {
	cases := map[string]Family{
		"add": Arithmetic, "sub": Arithmetic, "mul": Arithmetic, "div": Arithmetic, "rem": Arithmetic,
		"bitand": Bitwise, "bitor": Bitwise, "bitxor": Bitwise,
		"shl": Shift, "shr": Shift,
		"eq": Comparison, "cmp": Comparison,
	}
	assert.Len(t, Operations, len(cases))
	for name, family := range cases {
		op, ok := ParseOperation(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, family, op.Family(), name)
			assert.Equal(t, name, op.String())
		}
	}
	_, ok := ParseOperation("Add")
	assert.False(t, ok)
}

func TestOperationAccepts(t *testing.T) {
	for _, op := range []Operation{OpAdd, OpRem, OpEq, OpCmp} {
		for _, typ := range OperandTypes {
			assert.True(t, op.Accepts(typ), "%s %s", op, typ)
		}
		assert.Equal(t, 4, op.Arity())
	}
	for _, op := range []Operation{OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr} {
		for _, typ := range IntegerTypes {
			assert.True(t, op.Accepts(typ), "%s %s", op, typ)
		}
		assert.False(t, op.Accepts(F32), op.String())
		assert.False(t, op.Accepts(F64), op.String())
	}
	assert.Equal(t, 5, OpShl.Arity())
	assert.False(t, OpNone.Accepts(U8))
}

func TestOrdering(t *testing.T) {
	for _, o := range []Ordering{Less, Equal, Greater, Unordered} {
		got, ok := ParseOrdering(o.String())
		assert.True(t, ok)
		assert.Equal(t, o, got)
	}
	assert.False(t, Unordered.Ordered())
	assert.True(t, Less.Ordered())
	_, ok := ParseOrdering("LESS")
	assert.False(t, ok)
}
