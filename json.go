// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/pkg/errors"
)

// EvalArgs is a Request as carried by the JSON-RPC and gRPC transports.
type EvalArgs struct {
	Op        string `json:"op"`
	Type      string `json:"type"`
	ShiftType string `json:"shiftType,omitempty"`
	LHS       string `json:"lhs"`
	RHS       string `json:"rhs"`
}

// EvalReply carries the encoded result.
type EvalReply struct {
	Result string `json:"result"`
}

func argsFor(req Request) *EvalArgs {
	args := &EvalArgs{Op: req.Op.String(), Type: req.Type.String(), LHS: req.LHS, RHS: req.RHS}
	if req.Op.Family() == Shift {
		args.ShiftType = req.ShiftType.String()
	}
	return args
}

func (a *EvalArgs) segments() []string {
	segs := []string{a.Op, a.Type}
	if op, ok := ParseOperation(a.Op); ok && op.Family() == Shift {
		segs = append(segs, a.ShiftType)
	}
	return append(segs, a.LHS, a.RHS)
}

// Request validates args the same way ParsePath validates path segments.
func (a *EvalArgs) Request() (Request, error) {
	return NewRequest(a.segments()...)
}

func (a *EvalArgs) String() string {
	return "/" + strings.Join(a.segments(), "/")
}

func evalArgs(args *EvalArgs) (string, error) {
	req, err := args.Request()
	if err != nil {
		return "", err
	}
	return Eval(req)
}

// MathService is the JSON-RPC service registered as "Math".
type MathService struct{}

// Eval evaluates one request. Validation failures are reported as
// E_BAD_PARAMS, arithmetic faults as E_SERVER.
func (MathService) Eval(r *http.Request, args *EvalArgs, reply *EvalReply) error {
	log.Infof("POST %s %s", r.URL.Path, args)
	result, err := evalArgs(args)
	if err != nil {
		code := json2.E_SERVER
		if IsRequestError(err) {
			code = json2.E_BAD_PARAMS
		}
		return &json2.Error{Code: code, Message: err.Error()}
	}
	reply.Result = result
	return nil
}

// jsonEvaluator sends requests as JSON-RPC 2.0 POSTs to JSONRPCPath.
type jsonEvaluator struct {
	base   func() string
	client *http.Client
}

func dialJSON(_ context.Context, addr string, o *dialOptions) (evaluator, error) {
	return &jsonEvaluator{base: o.base, client: o.httpClient}, nil
}

func (j *jsonEvaluator) Eval(ctx context.Context, req Request) (string, error) {
	addr, err := resolveBase(j.base)
	if err != nil {
		return "", err
	}
	uri := "http://" + addr + JSONRPCPath
	requestBodyBytes, err := json2.EncodeClientRequest("Math.Eval", argsFor(req))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode client params")
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", &NetworkError{URL: uri, Err: errors.Wrap(err, "fail to create request")}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := j.client.Do(request)
	if err != nil {
		return "", &NetworkError{URL: uri, Err: err}
	}
	defer CleanlyCloseBody(resp.Body)

	var reply EvalReply
	err = json2.DecodeClientResponse(resp.Body, &reply)
	var jerr *json2.Error
	switch {
	case errors.As(err, &jerr):
		return "", &NetworkError{URL: uri, StatusCode: statusForRPCCode(jerr.Code), Body: jerr.Message}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &NetworkError{URL: uri, StatusCode: resp.StatusCode}
	case err != nil:
		return "", &DecodeError{Op: req.Op, Want: "JSON-RPC response", Err: err}
	}
	return reply.Result, nil
}

func (j *jsonEvaluator) Close() error { return nil }

func statusForRPCCode(code json2.ErrorCode) int {
	if code == json2.E_BAD_PARAMS {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
