// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"net/url"
	"strings"
)

// Request is one decoded operation. ShiftType is NoType unless Op is a shift.
type Request struct {
	Op        Operation
	Type      OperandType
	ShiftType OperandType
	LHS       string
	RHS       string
}

// Segments returns the path segments of r in wire order.
func (r Request) Segments() []string {
	if r.Op.Family() == Shift {
		return []string{r.Op.String(), r.Type.String(), r.ShiftType.String(), r.LHS, r.RHS}
	}
	return []string{r.Op.String(), r.Type.String(), r.LHS, r.RHS}
}

// Path returns the escaped URL path of r, starting with a slash.
func (r Request) Path() string {
	segs := r.Segments()
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segs, "/")
}

func (r Request) String() string { return r.Path() }

// ParsePath decodes an escaped URL path into a Request. Literals are not
// parsed here; Eval does that against the selected types.
func ParsePath(path string) (Request, error) {
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segs {
		u, err := url.PathUnescape(s)
		if err != nil {
			return Request{}, requestErrorf(ErrRequestMalformed, s, "invalid path segment %q", s)
		}
		segs[i] = u
	}
	return NewRequest(segs...)
}

// NewRequest validates unescaped segments and builds a Request from them.
// Checks run in wire order: operation, arity, operand type, shift type.
func NewRequest(segs ...string) (Request, error) {
	var tok string
	if len(segs) > 0 {
		tok = segs[0]
	}
	op, ok := ParseOperation(tok)
	if !ok {
		return Request{}, requestErrorf(ErrInvalidOperation, tok, "invalid operation %q", tok)
	}
	if len(segs) != op.Arity() {
		return Request{}, requestErrorf(ErrRequestMalformed, "",
			"wrong number of path segments for %s: expected %d, got %d", op, op.Arity(), len(segs))
	}
	typ, err := parseTypeFor(op, segs[1])
	if err != nil {
		return Request{}, err
	}
	req := Request{Op: op, Type: typ}
	operands := segs[2:]
	if op.Family() == Shift {
		if req.ShiftType, err = parseTypeFor(op, segs[2]); err != nil {
			return Request{}, err
		}
		operands = segs[3:]
	}
	req.LHS, req.RHS = operands[0], operands[1]
	return req, nil
}

func parseTypeFor(op Operation, tok string) (OperandType, error) {
	t, ok := ParseOperandType(tok)
	if !ok {
		return NoType, requestErrorf(ErrInvalidOperandType, tok, "invalid type %q", tok)
	}
	if !op.Accepts(t) {
		return NoType, requestErrorf(ErrInvalidOperandType, tok, "invalid type %q for %s", tok, op)
	}
	return t, nil
}
