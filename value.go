// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import "context"

// Value wraps a number whose operations are evaluated by a remote server.
// Each operation is one blocking round trip and returns a new Value; the
// operands are never modified, except by the Assign forms on success.
//
// Bitwise and shift operations are package functions because they only
// exist for integer types.
type Value[T Number] struct {
	c *Client
	x T
}

// New wraps x using DefaultClient.
func New[T Number](x T) Value[T] {
	return Value[T]{x: x}
}

// NewWith wraps x using c.
func NewWith[T Number](c *Client, x T) Value[T] {
	return Value[T]{c: c, x: x}
}

// Get returns the wrapped number.
func (v Value[T]) Get() T { return v.x }

// Type returns the operand type of the wrapped number.
func (v Value[T]) Type() OperandType { return TypeOf[T]() }

// Client returns the client operations on v are sent to.
func (v Value[T]) Client() *Client {
	if v.c == nil {
		return defaultClient
	}
	return v.c
}

func (v Value[T]) String() string { return FormatLiteral(v.x) }

func (v Value[T]) with(x T) Value[T] { return Value[T]{c: v.c, x: x} }

// eval sends req through v's client and returns the raw body.
func (v Value[T]) eval(ctx context.Context, req Request) (string, error) {
	return v.Client().Eval(ctx, req)
}

// result evaluates req and parses the body as a T.
func (v Value[T]) result(ctx context.Context, req Request) (Value[T], error) {
	body, err := v.eval(ctx, req)
	if err != nil {
		return Value[T]{}, err
	}
	x, err := ParseLiteral[T](body)
	if err != nil {
		return Value[T]{}, &DecodeError{Op: req.Op, Want: req.Type.String(), Body: body, Err: err}
	}
	return v.with(x), nil
}

func (v Value[T]) numeric(ctx context.Context, op Operation, rhs T) (Value[T], error) {
	return v.result(ctx, Request{Op: op, Type: TypeOf[T](), LHS: FormatLiteral(v.x), RHS: FormatLiteral(rhs)})
}

func (v *Value[T]) assign(ctx context.Context, op Operation, rhs T) error {
	r, err := v.numeric(ctx, op, rhs)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// Add returns v + rhs.
func (v Value[T]) Add(ctx context.Context, rhs Value[T]) (Value[T], error) {
	return v.numeric(ctx, OpAdd, rhs.x)
}

// Sub returns v - rhs.
func (v Value[T]) Sub(ctx context.Context, rhs Value[T]) (Value[T], error) {
	return v.numeric(ctx, OpSub, rhs.x)
}

// Mul returns v * rhs.
func (v Value[T]) Mul(ctx context.Context, rhs Value[T]) (Value[T], error) {
	return v.numeric(ctx, OpMul, rhs.x)
}

// Div returns v / rhs. Integer division by zero fails with a server fault.
func (v Value[T]) Div(ctx context.Context, rhs Value[T]) (Value[T], error) {
	return v.numeric(ctx, OpDiv, rhs.x)
}

// Rem returns the remainder of v / rhs.
func (v Value[T]) Rem(ctx context.Context, rhs Value[T]) (Value[T], error) {
	return v.numeric(ctx, OpRem, rhs.x)
}

// AddAssign sets v to v + rhs.
func (v *Value[T]) AddAssign(ctx context.Context, rhs Value[T]) error {
	return v.assign(ctx, OpAdd, rhs.x)
}

// SubAssign sets v to v - rhs.
func (v *Value[T]) SubAssign(ctx context.Context, rhs Value[T]) error {
	return v.assign(ctx, OpSub, rhs.x)
}

// MulAssign sets v to v * rhs.
func (v *Value[T]) MulAssign(ctx context.Context, rhs Value[T]) error {
	return v.assign(ctx, OpMul, rhs.x)
}

// DivAssign sets v to v / rhs.
func (v *Value[T]) DivAssign(ctx context.Context, rhs Value[T]) error {
	return v.assign(ctx, OpDiv, rhs.x)
}

// RemAssign sets v to the remainder of v / rhs.
func (v *Value[T]) RemAssign(ctx context.Context, rhs Value[T]) error {
	return v.assign(ctx, OpRem, rhs.x)
}

// Eq reports whether v == rhs.
func (v Value[T]) Eq(ctx context.Context, rhs Value[T]) (bool, error) {
	req := Request{Op: OpEq, Type: TypeOf[T](), LHS: FormatLiteral(v.x), RHS: FormatLiteral(rhs.x)}
	body, err := v.eval(ctx, req)
	if err != nil {
		return false, err
	}
	switch body {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &DecodeError{Op: OpEq, Want: "bool", Body: body}
}

// Cmp compares v with rhs. The result is Unordered when either side is NaN.
func (v Value[T]) Cmp(ctx context.Context, rhs Value[T]) (Ordering, error) {
	req := Request{Op: OpCmp, Type: TypeOf[T](), LHS: FormatLiteral(v.x), RHS: FormatLiteral(rhs.x)}
	body, err := v.eval(ctx, req)
	if err != nil {
		return Unordered, err
	}
	o, ok := ParseOrdering(body)
	if !ok {
		return Unordered, &DecodeError{Op: OpCmp, Want: "ordering", Body: body}
	}
	return o, nil
}

func (v Value[T]) cmpIs(ctx context.Context, rhs Value[T], want ...Ordering) (bool, error) {
	o, err := v.Cmp(ctx, rhs)
	if err != nil {
		return false, err
	}
	for _, w := range want {
		if o == w {
			return true, nil
		}
	}
	return false, nil
}

// Lt reports whether v < rhs.
func (v Value[T]) Lt(ctx context.Context, rhs Value[T]) (bool, error) {
	return v.cmpIs(ctx, rhs, Less)
}

// Le reports whether v <= rhs.
func (v Value[T]) Le(ctx context.Context, rhs Value[T]) (bool, error) {
	return v.cmpIs(ctx, rhs, Less, Equal)
}

// Gt reports whether v > rhs.
func (v Value[T]) Gt(ctx context.Context, rhs Value[T]) (bool, error) {
	return v.cmpIs(ctx, rhs, Greater)
}

// Ge reports whether v >= rhs.
func (v Value[T]) Ge(ctx context.Context, rhs Value[T]) (bool, error) {
	return v.cmpIs(ctx, rhs, Greater, Equal)
}

// BitAnd returns a & b.
func BitAnd[T Integer](ctx context.Context, a, b Value[T]) (Value[T], error) {
	return a.numeric(ctx, OpBitAnd, b.x)
}

// BitOr returns a | b.
func BitOr[T Integer](ctx context.Context, a, b Value[T]) (Value[T], error) {
	return a.numeric(ctx, OpBitOr, b.x)
}

// BitXor returns a ^ b.
func BitXor[T Integer](ctx context.Context, a, b Value[T]) (Value[T], error) {
	return a.numeric(ctx, OpBitXor, b.x)
}

// BitAndAssign sets a to a & b.
func BitAndAssign[T Integer](ctx context.Context, a *Value[T], b Value[T]) error {
	return a.assign(ctx, OpBitAnd, b.x)
}

// BitOrAssign sets a to a | b.
func BitOrAssign[T Integer](ctx context.Context, a *Value[T], b Value[T]) error {
	return a.assign(ctx, OpBitOr, b.x)
}

// BitXorAssign sets a to a ^ b.
func BitXorAssign[T Integer](ctx context.Context, a *Value[T], b Value[T]) error {
	return a.assign(ctx, OpBitXor, b.x)
}

func shiftBy[T, S Integer](ctx context.Context, op Operation, v Value[T], n S) (Value[T], error) {
	req := Request{
		Op:        op,
		Type:      TypeOf[T](),
		ShiftType: TypeOf[S](),
		LHS:       FormatLiteral(v.x),
		RHS:       FormatLiteral(n),
	}
	return v.result(ctx, req)
}

// Shl returns v << n. The shift amount type is sent independently of T.
func Shl[T, S Integer](ctx context.Context, v Value[T], n S) (Value[T], error) {
	return shiftBy(ctx, OpShl, v, n)
}

// Shr returns v >> n.
func Shr[T, S Integer](ctx context.Context, v Value[T], n S) (Value[T], error) {
	return shiftBy(ctx, OpShr, v, n)
}

// ShlAssign sets v to v << n.
func ShlAssign[T, S Integer](ctx context.Context, v *Value[T], n S) error {
	r, err := shiftBy(ctx, OpShl, *v, n)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// ShrAssign sets v to v >> n.
func ShrAssign[T, S Integer](ctx context.Context, v *Value[T], n S) error {
	r, err := shiftBy(ctx, OpShr, *v, n)
	if err != nil {
		return err
	}
	*v = r
	return nil
}
