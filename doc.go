// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package netmath evaluates primitive numeric operations on a remote server.
//
// Every operation is an HTTP GET whose path names the operation, the operand
// type(s) and both literals. The response body is the result as plain text.
//
//	GET /add/u32/6/7          -> 13
//	GET /shl/u8/i64/1/3       -> 8
//	GET /cmp/f64/NaN/1        -> none
//	GET /div/u32/1/0          -> 500, arithmetic fault
//
// # Server usage
//
//	server, err := netmath.Listen("localhost:4242")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Serve(ctx)
//
// # Client usage
//
// Values wrap a number; their methods perform one blocking round trip each:
//
//	netmath.SetBaseAddress("localhost:4242")
//	x, y := netmath.New[uint64](6), netmath.New[uint64](7)
//	z, err := x.Mul(ctx, y) // z.Get() == 42
//
// The process-wide base address is only read by values created with New.
// Values created with NewWith use the address of their own Client:
//
//	client, err := netmath.Dial(ctx, "localhost:4242")
//	x := netmath.NewWith(client, int16(16))
//	y, err := netmath.Shr(ctx, x, uint8(2)) // y.Get() == 4
//
// Failures are returned, never panicked: a *NetworkError (errors.Is
// ErrNetwork) when the server is unreachable or answers with a failing
// status, a *DecodeError (errors.Is ErrResponseDecode) when the body does not
// parse.
//
// # Transport Selection
//
// The GET path protocol is the default. The HTTP server also answers JSON-RPC
// 2.0 at POST /rpc, and a gRPC server can be started with
// WithServerTransport(TransportGRPC). Clients pick one with WithTransport.
//
// # Architecture
//
//   - types.go: operand types, operations and families
//   - request.go: Request and the path grammar
//   - codec.go: literal formatting and parsing
//   - dispatch.go: the (operation, type, shift type) dispatch table
//   - server.go: HTTP handler and server
//   - client.go, value.go: Client, base address and Value
//   - json.go, dial_grpc.go: JSON-RPC and gRPC transports
//   - transport.go, dial.go: transport registry, Dial and Listen
package netmath
