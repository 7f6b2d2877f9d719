package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/breadbun407/WordScrawl/pkg/logger"
)

type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

func New(addr string, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // websocket connections outlive any write deadline
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.log.Info("starting http server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
