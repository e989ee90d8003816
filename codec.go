// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Integer is the set of fixed-width integer types.
type Integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// Float is the set of floating-point types.
type Float interface {
	float32 | float64
}

// Number is the set of Go types that map onto an OperandType.
type Number interface {
	Integer | Float
}

// TypeOf returns the operand type of T.
func TypeOf[T Number]() OperandType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return U8
	case uint16:
		return U16
	case uint32:
		return U32
	case uint64:
		return U64
	case int8:
		return I8
	case int16:
		return I16
	case int32:
		return I32
	case int64:
		return I64
	case float32:
		return F32
	case float64:
		return F64
	}
	return NoType
}

// FormatLiteral renders x in the canonical wire form of its type.
func FormatLiteral[T Number](x T) string {
	t := TypeOf[T]()
	switch {
	case t.IsSigned():
		return strconv.FormatInt(int64(x), 10)
	case t.IsInteger():
		return strconv.FormatUint(uint64(x), 10)
	}
	return formatFloat(float64(x), t.Bits())
}

// formatFloat writes the shortest exact decimal without an exponent.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// ParseLiteral parses s as a literal of T. Unsigned literals may carry a
// leading '+'; float literals accept inf, infinity and nan in any case.
func ParseLiteral[T Number](s string) (T, error) {
	t := TypeOf[T]()
	switch {
	case t.IsSigned():
		n, err := strconv.ParseInt(s, 10, t.Bits())
		return T(n), err
	case t.IsInteger():
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, t.Bits())
		return T(n), err
	}
	f, err := strconv.ParseFloat(s, t.Bits())
	return T(f), err
}

// parseReason extracts the bare cause from a strconv error.
func parseReason(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err.Error()
	}
	return err.Error()
}

// jsonCodec carries gRPC messages as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }
