// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const grpcEvalMethod = "/netmath.Math/Eval"

// mathServer is the handler type of the netmath.Math gRPC service.
type mathServer interface {
	eval(ctx context.Context, args *EvalArgs) (*EvalReply, error)
}

type grpcService struct{}

func (grpcService) eval(ctx context.Context, args *EvalArgs) (*EvalReply, error) {
	log.Infof("GRPC %s", args)
	result, err := evalArgs(args)
	if err != nil {
		code := codes.Internal
		if IsRequestError(err) {
			code = codes.InvalidArgument
		}
		return nil, status.Error(code, err.Error())
	}
	return &EvalReply{Result: result}, nil
}

func evalGRPCHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvalArgs)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(mathServer).eval(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: grpcEvalMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(mathServer).eval(ctx, req.(*EvalArgs))
	}
	return interceptor(ctx, in, info, handler)
}

// Messages are plain structs, so the service is declared by hand and both
// sides force the JSON codec.
var mathServiceDesc = grpc.ServiceDesc{
	ServiceName: "netmath.Math",
	HandlerType: (*mathServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Eval", Handler: evalGRPCHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// grpcServer implements Server over gRPC
type grpcServer struct {
	listener net.Listener
	srv      *grpc.Server
}

func listenGRPC(addr string, o *serverOptions) (Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "fail to listen on "+addr)
	}
	srv := grpc.NewServer(grpc.ForceServerCodec(jsonCodec{}))
	srv.RegisterService(&mathServiceDesc, grpcService{})
	return &grpcServer{listener: listener, srv: srv}, nil
}

func (s *grpcServer) Serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.srv.Stop()
		case <-done:
		}
	}()
	err := s.srv.Serve(s.listener)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

func (s *grpcServer) Close() error {
	s.srv.Stop()
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (s *grpcServer) Addr() string {
	return s.listener.Addr().String()
}

// grpcEvaluator sends requests as unary gRPC calls.
type grpcEvaluator struct {
	addr string
	conn *grpc.ClientConn
}

func dialGRPC(ctx context.Context, addr string, o *dialOptions) (evaluator, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	)
	if err != nil {
		return nil, errors.Wrap(err, "grpc dial")
	}
	return &grpcEvaluator{addr: addr, conn: conn}, nil
}

func (g *grpcEvaluator) Eval(ctx context.Context, req Request) (string, error) {
	var reply EvalReply
	if err := g.conn.Invoke(ctx, grpcEvalMethod, argsFor(req), &reply); err != nil {
		uri := "grpc://" + g.addr + req.Path()
		st, ok := status.FromError(err)
		if !ok {
			return "", &NetworkError{URL: uri, Err: err}
		}
		switch st.Code() {
		case codes.InvalidArgument:
			return "", &NetworkError{URL: uri, StatusCode: http.StatusBadRequest, Body: st.Message()}
		case codes.Internal:
			return "", &NetworkError{URL: uri, StatusCode: http.StatusInternalServerError, Body: st.Message()}
		}
		return "", &NetworkError{URL: uri, Err: err}
	}
	return reply.Result, nil
}

func (g *grpcEvaluator) Close() error {
	return g.conn.Close()
}
