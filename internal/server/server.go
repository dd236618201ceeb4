// Package server serves a single rendered diff report via HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// Server serves one HTML report and allows swapping it out while running.
type Server struct {
	http    *http.Server
	handler *handler
	errc    chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string, report []byte) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	h := &handler{}
	h.Replace(report)

	s := &Server{
		http: &http.Server{
			Handler: h,
		},
		handler: h,
		errc:    make(chan error),
	}

	go func() {
		if err := s.http.Serve(l); err != nil && err != http.ErrServerClosed {
			s.errc <- err
		}
	}()

	return s, nil
}

// Replace replaces the report to serve with the one provided.
func (s *Server) Replace(report []byte) {
	s.handler.Replace(report)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	close(s.errc)
	return nil
}

// Error returns a channel to listen to errors while serving.
func (s *Server) Error() <-chan error {
	return s.errc
}
