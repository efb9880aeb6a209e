// Package server serves the rendered landing page for local preview. Each
// request renders a fresh document, and connected browsers reload when the
// host page changes on disk.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/conneroisu/shelfpage/internal/config"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
	"github.com/conneroisu/shelfpage/internal/logging"
	"github.com/conneroisu/shelfpage/internal/watcher"
	"github.com/conneroisu/shelfpage/internal/websocket"
)

// PreviewServer renders the page over HTTP and pushes reloads over
// WebSocket.
type PreviewServer struct {
	config  *config.Config
	logger  logging.Logger
	hub     *websocket.Hub
	watcher *watcher.FileWatcher

	serverMutex sync.RWMutex
	httpServer  *http.Server
	listener    net.Listener

	shutdownOnce sync.Once
}

// New builds a server for cfg. The file watcher is created only when hot
// reload is on and the host page comes from a file.
func New(cfg *config.Config, logger logging.Logger) (*PreviewServer, error) {
	if cfg == nil {
		return nil, shelferrors.NewConfigError(shelferrors.ErrCodeConfigInvalid, "server configuration is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	s := &PreviewServer{
		config: cfg,
		logger: logger.WithComponent("server"),
		hub:    websocket.NewHub(cfg.Server.AllowedOrigins, logger),
	}

	if cfg.Development.HotReload && cfg.Page.Source != "" {
		delay := time.Duration(cfg.Development.DebounceMS) * time.Millisecond
		fw, err := watcher.NewFileWatcher(delay, logger)
		if err != nil {
			return nil, err
		}
		if err := fw.AddFile(cfg.Page.Source); err != nil {
			_ = fw.Stop()
			return nil, err
		}
		fw.AddHandler(s.handleFileChange)
		s.watcher = fw
	}

	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /version", s.handleVersion)
	mux.Handle("GET /ws", s.hub)

	return s.withLogging(withSecurityHeaders(mux))
}

// Hub exposes the reload hub.
func (s *PreviewServer) Hub() *websocket.Hub {
	return s.hub
}

// Addr is the bound address once Start is listening, or "".
func (s *PreviewServer) Addr() string {
	s.serverMutex.RLock()
	defer s.serverMutex.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start listens on the configured address and serves until ctx is
// cancelled or the server fails.
func (s *PreviewServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return shelferrors.Wrap(err, shelferrors.ErrorTypeIO, shelferrors.ErrCodeServerFailed, "cannot listen on "+s.config.Address())
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.serverMutex.Lock()
	s.httpServer = srv
	s.listener = ln
	s.serverMutex.Unlock()

	if s.watcher != nil {
		s.watcher.Start(ctx)
	}

	s.logger.Info(ctx, "Preview server listening", "addr", ln.Addr().String(), "hot_reload", s.config.Development.HotReload)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return shelferrors.Wrap(err, shelferrors.ErrorTypeIO, shelferrors.ErrCodeServerFailed, "preview server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown stops the watcher, disconnects browsers and drains HTTP
// requests. Later calls return nil.
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.watcher != nil {
			if err := s.watcher.Stop(); err != nil {
				s.logger.Warn(ctx, err, "Failed to stop file watcher")
			}
		}

		if err := s.hub.Shutdown(ctx); err != nil {
			shutdownErr = err
		}

		s.serverMutex.RLock()
		srv := s.httpServer
		s.serverMutex.RUnlock()

		if srv != nil {
			if err := srv.Shutdown(ctx); err != nil && shutdownErr == nil {
				shutdownErr = err
			}
		}
	})

	return shutdownErr
}

func (s *PreviewServer) handleFileChange(ctx context.Context, events []watcher.ChangeEvent) error {
	for _, ev := range events {
		s.logger.Info(ctx, "Host page changed", "path", ev.Path, "type", ev.Type.String())
	}
	if !s.hub.Reload() {
		return shelferrors.NewInternalError(shelferrors.ErrCodeServerFailed, "reload broadcast dropped", nil)
	}
	return nil
}
