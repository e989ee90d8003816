// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
)

// evalFunc parses both literals and computes the encoded result.
type evalFunc func(lhs, rhs string) (string, error)

type dispatchKey struct {
	op        Operation
	typ       OperandType
	shiftType OperandType
}

// dispatch is read-only after init.
var dispatch = buildDispatchTable()

// Dispatch decodes an escaped URL path and evaluates it.
func Dispatch(path string) (string, error) {
	req, err := ParsePath(path)
	if err != nil {
		return "", err
	}
	return Eval(req)
}

// Eval evaluates req and returns the encoded result. A runtime trap in the
// operation, such as integer division by zero, is returned as an
// ErrArithmeticFault RequestError.
func Eval(req Request) (result string, err error) {
	fn, ok := dispatch[dispatchKey{req.Op, req.Type, req.ShiftType}]
	if !ok {
		// Requests built by hand may skip NewRequest.
		if _, err := NewRequest(req.Segments()...); err != nil {
			return "", err
		}
		return "", requestErrorf(ErrInvalidOperandType, req.ShiftType.String(),
			"invalid shift type %q for %s", req.ShiftType, req.Op)
	}
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = requestErrorf(ErrArithmeticFault, "", "arithmetic fault in %s: %s", req.Path(), rerr.Error())
		}
	}()
	return fn(req.LHS, req.RHS)
}

func parseOperand[T Number](side, s string) (T, error) {
	x, err := ParseLiteral[T](s)
	if err != nil {
		return x, requestErrorf(ErrOperandParse, s, "invalid %s operand %q for %s: %s",
			side, s, TypeOf[T](), parseReason(err))
	}
	return x, nil
}

func binary[T Number, R any](f func(a, b T) R, enc func(R) string) evalFunc {
	return func(lhs, rhs string) (string, error) {
		a, err := parseOperand[T]("lhs", lhs)
		if err != nil {
			return "", err
		}
		b, err := parseOperand[T]("rhs", rhs)
		if err != nil {
			return "", err
		}
		return enc(f(a, b)), nil
	}
}

func shift[T, S Integer](f func(a T, n S) T) evalFunc {
	return func(lhs, rhs string) (string, error) {
		a, err := parseOperand[T]("lhs", lhs)
		if err != nil {
			return "", err
		}
		n, err := parseOperand[S]("rhs", rhs)
		if err != nil {
			return "", err
		}
		return FormatLiteral(f(a, n)), nil
	}
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Number](a, b T) T { return a / b }

func remInt[T Integer](a, b T) T { return a % b }
func remFloat[T Float](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

func bitAnd[T Integer](a, b T) T { return a & b }
func bitOr[T Integer](a, b T) T  { return a | b }
func bitXor[T Integer](a, b T) T { return a ^ b }

func shl[T, S Integer](a T, n S) T { return a << n }
func shr[T, S Integer](a T, n S) T { return a >> n }

func eq[T Number](a, b T) bool { return a == b }

func compare[T Number](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	}
	return Unordered
}

type dispatchTable map[dispatchKey]evalFunc

func (d dispatchTable) set(op Operation, t, s OperandType, fn evalFunc) {
	k := dispatchKey{op, t, s}
	if _, dup := d[k]; dup {
		panic(fmt.Sprintf("netmath: duplicate dispatch entry %v", k))
	}
	d[k] = fn
}

func registerNumber[T Number](d dispatchTable) {
	t := TypeOf[T]()
	d.set(OpAdd, t, NoType, binary(add[T], FormatLiteral[T]))
	d.set(OpSub, t, NoType, binary(sub[T], FormatLiteral[T]))
	d.set(OpMul, t, NoType, binary(mul[T], FormatLiteral[T]))
	d.set(OpDiv, t, NoType, binary(div[T], FormatLiteral[T]))
	d.set(OpEq, t, NoType, binary(eq[T], strconv.FormatBool))
	d.set(OpCmp, t, NoType, binary(compare[T], Ordering.String))
}

func registerFloat[T Float](d dispatchTable) {
	registerNumber[T](d)
	d.set(OpRem, TypeOf[T](), NoType, binary(remFloat[T], FormatLiteral[T]))
}

func registerInteger[T Integer](d dispatchTable) {
	registerNumber[T](d)
	t := TypeOf[T]()
	d.set(OpRem, t, NoType, binary(remInt[T], FormatLiteral[T]))
	d.set(OpBitAnd, t, NoType, binary(bitAnd[T], FormatLiteral[T]))
	d.set(OpBitOr, t, NoType, binary(bitOr[T], FormatLiteral[T]))
	d.set(OpBitXor, t, NoType, binary(bitXor[T], FormatLiteral[T]))
	registerShift[T, uint8](d)
	registerShift[T, uint16](d)
	registerShift[T, uint32](d)
	registerShift[T, uint64](d)
	registerShift[T, int8](d)
	registerShift[T, int16](d)
	registerShift[T, int32](d)
	registerShift[T, int64](d)
}

func registerShift[T, S Integer](d dispatchTable) {
	t, s := TypeOf[T](), TypeOf[S]()
	d.set(OpShl, t, s, shift(shl[T, S]))
	d.set(OpShr, t, s, shift(shr[T, S]))
}

func buildDispatchTable() dispatchTable {
	d := make(dispatchTable)
	registerInteger[uint8](d)
	registerInteger[uint16](d)
	registerInteger[uint32](d)
	registerInteger[uint64](d)
	registerInteger[int8](d)
	registerInteger[int16](d)
	registerInteger[int32](d)
	registerInteger[int64](d)
	registerFloat[float32](d)
	registerFloat[float64](d)
	return d
}
