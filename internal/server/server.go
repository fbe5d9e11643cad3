// Package server implements a small demonstration server whose routes are
// all guarded by a resource-isolation middleware.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jub0bs/isolation"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	maxEchoBytes      = 1 << 20
)

// Server is the demonstration server.
type Server struct {
	path   string
	cfg    *Config
	mw     *isolation.Middleware
	logger *slog.Logger
}

// New creates a server from cfg. path is the config file cfg was read from;
// it is re-read by Reload and may be empty.
func New(path string, cfg *Config, logger *slog.Logger) (*Server, error) {
	mw, err := isolation.NewMiddleware(cfg.Isolation())
	if err != nil {
		return nil, fmt.Errorf("build isolation middleware: %w", err)
	}
	return &Server{
		path:   path,
		cfg:    cfg,
		mw:     mw,
		logger: logger,
	}, nil
}

// Reload re-reads the config file and applies its exempt paths.
// Listener settings only take effect on restart.
// On failure, the current policy stays in force.
func (s *Server) Reload() error {
	cfg, err := LoadConfig(s.path)
	if err != nil {
		return err
	}
	icfg := cfg.Isolation()
	if err := s.mw.Reconfigure(&icfg); err != nil {
		return fmt.Errorf("reconfigure isolation middleware: %w", err)
	}
	s.logger.Info("isolation policy reloaded", "exempt_paths", icfg.ExemptPaths)
	return nil
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.accessLog)
	r.Use(s.mw.Wrap)

	r.Get("/", handleHello)
	r.Get("/healthz", handleHealthz)
	r.Post("/echo", handleEcho)
	r.Post("/webhooks/{source}", handleWebhook)

	if s.cfg.H2C {
		return h2c.NewHandler(r, &http2.Server{})
	}
	return r
}

// ListenAndServe listens on the configured address and serves until ctx is
// done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String(), "h2c", s.cfg.H2C)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		level := slog.LevelInfo
		if ww.Status() == http.StatusForbidden {
			level = slog.LevelWarn
		}
		s.logger.LogAttrs(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")),
			slog.String("sec_fetch_mode", r.Header.Get("Sec-Fetch-Mode")),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func handleHello(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, "Hello, World!")
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, "ok")
}

func handleEcho(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	io.Copy(w, io.LimitReader(r.Body, maxEchoBytes))
}

func handleWebhook(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintf(w, "accepted %s delivery", chi.URLParam(r, "source"))
}
