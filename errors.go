// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRequestMalformed is returned for a request with the wrong number of path segments.
	ErrRequestMalformed = errors.New("netmath: malformed request")
	// ErrInvalidOperation is returned for an unknown operation token.
	ErrInvalidOperation = errors.New("netmath: invalid operation")
	// ErrInvalidOperandType is returned for an unknown operand type or one the operation does not accept.
	ErrInvalidOperandType = errors.New("netmath: invalid operand type")
	// ErrOperandParse is returned when a literal does not parse as its declared type.
	ErrOperandParse = errors.New("netmath: operand parse error")
	// ErrArithmeticFault is returned when evaluation traps, e.g. integer division by zero.
	ErrArithmeticFault = errors.New("netmath: arithmetic fault")

	// ErrNetwork matches every *NetworkError.
	ErrNetwork = errors.New("netmath: network failure")
	// ErrResponseDecode matches every *DecodeError.
	ErrResponseDecode = errors.New("netmath: response decode error")
	// ErrNoBaseAddress is returned by the default client before SetBaseAddress is called.
	ErrNoBaseAddress = errors.New("netmath: base address not set")
)

// RequestError describes a request the server refused or failed to evaluate.
// Msg is sent back to the caller verbatim.
type RequestError struct {
	Kind  error
	Token string
	Msg   string
}

func (e *RequestError) Error() string { return e.Msg }

func (e *RequestError) Unwrap() error { return e.Kind }

func requestErrorf(kind error, token, format string, args ...interface{}) *RequestError {
	return &RequestError{Kind: kind, Token: token, Msg: fmt.Sprintf(format, args...)}
}

// NetworkError is returned when the server cannot be reached or answers
// with a failing status.
type NetworkError struct {
	URL        string
	StatusCode int    // zero when no HTTP response was received
	Body       string // response body for a failing status
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("request %s failed: %s", e.URL, e.Err.Error())
	case e.Body != "":
		return fmt.Sprintf("request %s got status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request %s got status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// DecodeError is returned when a response body does not parse as the
// expected result type.
type DecodeError struct {
	Op   Operation
	Want string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("cannot decode %s response %q as %s", e.Op, e.Body, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrResponseDecode }

// IsRequestError reports whether err is a validation failure the server
// answers with a bad request status.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && !errors.Is(re.Kind, ErrArithmeticFault)
}
