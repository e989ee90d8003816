// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

// OperandType identifies one of the primitive numeric kinds carried on the wire.
type OperandType uint8

// Operand types. NoType marks an absent shift type.
const (
	NoType OperandType = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
)

var operandTypeNames = [...]string{
	NoType: "",
	U8:     "u8",
	U16:    "u16",
	U32:    "u32",
	U64:    "u64",
	I8:     "i8",
	I16:    "i16",
	I32:    "i32",
	I64:    "i64",
	F32:    "f32",
	F64:    "f64",
}

// IntegerTypes lists the eight fixed-width integer types.
var IntegerTypes = []OperandType{U8, U16, U32, U64, I8, I16, I32, I64}

// OperandTypes lists every operand type.
var OperandTypes = []OperandType{U8, U16, U32, U64, I8, I16, I32, I64, F32, F64}

// ParseOperandType returns the operand type with the given wire name.
func ParseOperandType(name string) (OperandType, bool) {
	for _, t := range OperandTypes {
		if operandTypeNames[t] == name {
			return t, true
		}
	}
	return NoType, false
}

func (t OperandType) String() string {
	if int(t) < len(operandTypeNames) {
		return operandTypeNames[t]
	}
	return "invalid"
}

// Valid reports whether t is one of the ten operand types.
func (t OperandType) Valid() bool { return t >= U8 && t <= F64 }

// IsInteger reports whether t is a fixed-width integer type.
func (t OperandType) IsInteger() bool { return t >= U8 && t <= I64 }

// IsSigned reports whether t is a signed integer type.
func (t OperandType) IsSigned() bool { return t >= I8 && t <= I64 }

// IsFloat reports whether t is a floating-point type.
func (t OperandType) IsFloat() bool { return t == F32 || t == F64 }

// Bits returns the width of t in bits.
func (t OperandType) Bits() int {
	switch t {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32, F32:
		return 32
	case U64, I64, F64:
		return 64
	}
	return 0
}

// Family groups operations that share arity and operand type rules.
type Family uint8

const (
	Arithmetic Family = iota + 1
	Bitwise
	Shift
	Comparison
)

// Operation is a primitive operation the server can evaluate.
type Operation uint8

// Operations.
const (
	OpNone Operation = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpEq
	OpCmp
)

var operationNames = [...]string{
	OpNone:   "",
	OpAdd:    "add",
	OpSub:    "sub",
	OpMul:    "mul",
	OpDiv:    "div",
	OpRem:    "rem",
	OpBitAnd: "bitand",
	OpBitOr:  "bitor",
	OpBitXor: "bitxor",
	OpShl:    "shl",
	OpShr:    "shr",
	OpEq:     "eq",
	OpCmp:    "cmp",
}

// Operations lists every operation in wire order.
var Operations = []Operation{OpAdd, OpSub, OpMul, OpDiv, OpRem, OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr, OpEq, OpCmp}

// ParseOperation returns the operation with the given wire name.
func ParseOperation(name string) (Operation, bool) {
	for _, op := range Operations {
		if operationNames[op] == name {
			return op, true
		}
	}
	return OpNone, false
}

func (op Operation) String() string {
	if int(op) < len(operationNames) {
		return operationNames[op]
	}
	return "invalid"
}

// Family returns the family op belongs to, or 0 for an invalid operation.
func (op Operation) Family() Family {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpRem:
		return Arithmetic
	case OpBitAnd, OpBitOr, OpBitXor:
		return Bitwise
	case OpShl, OpShr:
		return Shift
	case OpEq, OpCmp:
		return Comparison
	}
	return 0
}

// Arity returns the number of path segments a request for op has.
func (op Operation) Arity() int {
	if op.Family() == Shift {
		return 5
	}
	return 4
}

// Accepts reports whether t is a valid left-hand operand type for op.
func (op Operation) Accepts(t OperandType) bool {
	switch op.Family() {
	case Arithmetic, Comparison:
		return t.Valid()
	case Bitwise, Shift:
		return t.IsInteger()
	}
	return false
}

// Ordering is the result of a cmp operation.
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

// ParseOrdering maps a cmp response token to an Ordering.
func ParseOrdering(s string) (Ordering, bool) {
	switch s {
	case "less":
		return Less, true
	case "equal":
		return Equal, true
	case "greater":
		return Greater, true
	case "none":
		return Unordered, true
	}
	return Unordered, false
}

// Ordered reports whether o is a total-order result.
func (o Ordering) Ordered() bool { return o != Unordered }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "none"
}
