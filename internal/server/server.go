// Package server provides the HTTP API over the transfer dataset.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/transfer/internal/server/router"
	"github.com/leapstack-labs/transfer/pkg/core"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

// Reloader reopens the dataset. dataset.Reloadable implements it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Server is the API server.
type Server struct {
	cfg    Config
	logger *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Dataset core.Dataset
	Logger  *slog.Logger

	Host              string
	Port              int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// MaxConnections caps simultaneously accepted connections. Zero means no limit.
	MaxConnections int

	// Watch reloads the dataset through Reloader when the file at WatchPath
	// changes. Ignored when either is unset.
	Watch         bool
	WatchPath     string
	Reloader      Reloader
	WatchDebounce time.Duration
}

// Default server settings.
const (
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultWatchDebounce     = 200 * time.Millisecond
)

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = DefaultWatchDebounce
	}
	return &Server{cfg: cfg, logger: cfg.Logger}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Handler builds the router with middleware and all feature routes.
func (s *Server) Handler() (http.Handler, error) {
	if s.cfg.Dataset == nil {
		return nil, fmt.Errorf("server requires a dataset")
	}

	r := chi.NewMux()
	r.Use(
		requestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	if err := router.SetupRoutes(r, s.cfg.Dataset, s.logger); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve listens on the configured address and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout. ln is closed on return.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	handler, err := s.Handler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	s.logger.Info("starting API server", "addr", "http://"+ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	if s.cfg.Watch && s.cfg.WatchPath != "" && s.cfg.Reloader != nil {
		eg.Go(func() error {
			return s.watchDataset(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
