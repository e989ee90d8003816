// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package netmath

import (
	"context"
	"net"
	"net/http"
	"sync"

	gorillarpc "github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/pkg/errors"
)

// JSONRPCPath is where the HTTP server accepts JSON-RPC calls.
const JSONRPCPath = "/rpc"

type handler struct {
	rpc *gorillarpc.Server
}

// NewHandler returns the HTTP handler for the GET path protocol. POST
// requests to JSONRPCPath are served as JSON-RPC 2.0.
func NewHandler() http.Handler {
	s := gorillarpc.NewServer()
	s.RegisterCodec(json2.NewCodec(), "application/json")
	if err := s.RegisterService(new(MathService), "Math"); err != nil {
		panic(err)
	}
	return &handler{rpc: s}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == JSONRPCPath {
		// MathService.Eval logs the decoded request
		h.rpc.ServeHTTP(w, r)
		return
	}
	path := r.URL.EscapedPath()
	log.Infof("%s %s", r.Method, path)
	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := Dispatch(path)
	if err != nil {
		writeText(w, statusFor(err), err.Error())
		return
	}
	writeText(w, http.StatusOK, body)
}

// statusFor maps an evaluation error to an HTTP status.
func statusFor(err error) int {
	if IsRequestError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// httpServer implements Server over net/http
type httpServer struct {
	listener net.Listener
	srv      *http.Server
	once     sync.Once
}

func listenHTTP(addr string, o *serverOptions) (Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "fail to listen on "+addr)
	}
	return &httpServer{
		listener: listener,
		srv:      &http.Server{Handler: NewHandler()},
	}, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-done:
		}
	}()

	err := s.srv.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *httpServer) Close() error {
	var err error
	s.once.Do(func() {
		err = s.srv.Close()
		// Close the listener too in case Serve was never called
		if lerr := s.listener.Close(); err == nil && lerr != nil && !errors.Is(lerr, net.ErrClosed) {
			err = lerr
		}
	})
	return err
}

func (s *httpServer) Addr() string {
	return s.listener.Addr().String()
}
