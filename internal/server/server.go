package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/config"
	"github.com/asthait/studentms/internal/db"
	"github.com/asthait/studentms/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and its database connection
type Server struct {
	config *config.Config
	router *gin.Engine
	mongo  *db.MongoDB
	http   *http.Server
}

// New creates a server ready to run
func New(cfg *config.Config, router *gin.Engine, mongodb *db.MongoDB) *Server {
	return &Server{
		config: cfg,
		router: router,
		mongo:  mongodb,
		http: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: router,
		},
	}
}

// Run starts the HTTP server and blocks until an interrupt or terminate
// signal arrives, then shuts down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("Starting HTTP server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	return s.Shutdown()
}

// Shutdown stops accepting new requests, drains in-flight ones and closes
// the database connection.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	if err := s.mongo.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}
