package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"
)

const shutdownTimeout = 15 * time.Second

type HTTPServer interface {
	Run() error
	Shutdown() error
}

type Option func(*httpServer)

type httpServer struct {
	server *http.Server
}

func NewHTTPServer(opts ...Option) HTTPServer {
	srv := &httpServer{
		server: &http.Server{
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func WithAddr(host string, port uint16) Option {
	return func(s *httpServer) {
		s.server.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	}
}

func WithTimeout(read, write, idle time.Duration) Option {
	return func(s *httpServer) {
		s.server.ReadTimeout = read
		s.server.WriteTimeout = write
		s.server.IdleTimeout = idle
	}
}

func WithHandler(h http.Handler) Option {
	return func(s *httpServer) {
		s.server.Handler = h
	}
}

// Run blocks until the server stops. A graceful Shutdown is not an error.
func (s *httpServer) Run() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
