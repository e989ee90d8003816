// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command netmath-demo prints Fibonacci numbers and their primality, with
// every addition, multiplication, remainder and comparison done remotely.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	logging "github.com/op/go-logging"

	"github.com/luxfi/netmath"
)

var (
	addr       = flag.String("addr", "localhost:4242", "Server address")
	standalone = flag.Bool("standalone", false, "Start an in-process server on -addr")
	count      = flag.Int("n", 20, "Number of Fibonacci numbers to print")
	transport  = flag.String("transport", netmath.DefaultTransport, "Client transport: http, json or grpc")
)

func main() {
	flag.Parse()
	logging.SetLevel(logging.WARNING, "")

	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	target := *addr
	if *standalone {
		server, err := netmath.StartServer(*addr)
		if err != nil {
			return err
		}
		defer server.Close()
		target = netmath.BaseAddress()
	}

	client, err := netmath.Dial(ctx, target, netmath.WithTransport(*transport))
	if err != nil {
		return err
	}
	defer client.Close()

	product, err := netmath.NewWith(client, uint64(6)).Mul(ctx, netmath.NewWith(client, uint64(7)))
	if err != nil {
		return err
	}
	fmt.Println("6 * 7 =", product)

	fib := newFib(client)
	for i := 0; i < *count; i++ {
		x, err := fib.next(ctx)
		if err != nil {
			return err
		}
		prime, err := isPrime(ctx, x)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%v\n", x.Get(), prime)
	}
	return nil
}

type fib struct {
	a, b netmath.Value[uint64]
}

func newFib(c *netmath.Client) *fib {
	return &fib{a: netmath.NewWith(c, uint64(0)), b: netmath.NewWith(c, uint64(1))}
}

func (f *fib) next(ctx context.Context) (netmath.Value[uint64], error) {
	res := f.a
	sum, err := f.a.Add(ctx, f.b)
	if err != nil {
		return res, err
	}
	f.a, f.b = f.b, sum
	return res, nil
}

// isPrime tests x by trial division with odd divisors.
func isPrime(ctx context.Context, x netmath.Value[uint64]) (bool, error) {
	c := x.Client()
	zero, one, two := netmath.NewWith(c, uint64(0)), netmath.NewWith(c, uint64(1)), netmath.NewWith(c, uint64(2))

	if small, err := x.Le(ctx, one); err != nil || small {
		return false, err
	}
	if isTwo, err := x.Eq(ctx, two); err != nil || isTwo {
		return isTwo, err
	}
	r, err := x.Rem(ctx, two)
	if err != nil {
		return false, err
	}
	if even, err := r.Eq(ctx, zero); err != nil || even {
		return false, err
	}

	i := netmath.NewWith(c, uint64(3))
	for {
		sq, err := i.Mul(ctx, i)
		if err != nil {
			return false, err
		}
		if past, err := sq.Gt(ctx, x); err != nil || past {
			return past, err
		}
		r, err := x.Rem(ctx, i)
		if err != nil {
			return false, err
		}
		if divides, err := r.Eq(ctx, zero); err != nil || divides {
			return false, err
		}
		if err := i.AddAssign(ctx, two); err != nil {
			return false, err
		}
	}
}
