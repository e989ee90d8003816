// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command netmath-server serves netmath operations over HTTP and,
// optionally, gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	logging "github.com/op/go-logging"

	"github.com/luxfi/netmath"
)

var log = logging.MustGetLogger("netmath-server")

var (
	addr     = flag.String("addr", "localhost:4242", "HTTP address to bind")
	grpcAddr = flag.String("grpc-addr", "", "gRPC address to bind, disabled when empty")
	level    = flag.String("log-level", "INFO", "Log level: DEBUG, INFO, WARNING, ERROR, CRITICAL")
	logFile  = flag.String("log-file", "", "Filename to append log to, stderr when empty")
)

func setupLogging() error {
	var out io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		out = f
	}
	lvl, err := logging.LogLevel(*level)
	if err != nil {
		return err
	}
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05.000} %{level:.4s} %{module} %{shortfile} %{message}`,
	)
	backend := logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func main() {
	flag.Parse()
	if err := setupLogging(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []netmath.Server{}
	httpServer, err := netmath.Listen(*addr)
	if err != nil {
		log.Fatal(err)
	}
	servers = append(servers, httpServer)
	if *grpcAddr != "" {
		grpcServer, err := netmath.Listen(*grpcAddr, netmath.WithServerTransport(netmath.TransportGRPC))
		if err != nil {
			log.Fatal(err)
		}
		servers = append(servers, grpcServer)
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s netmath.Server) {
			defer wg.Done()
			log.Infof("Running on %s", s.Addr())
			if err := s.Serve(ctx); err != nil {
				log.Errorf("serve %s: %v", s.Addr(), err)
				stop()
			}
		}(s)
	}
	wg.Wait()
	log.Info("stopped")
}
