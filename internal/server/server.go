// Package server exposes the runner over HTTP: a token-protected JSON API for
// tuning and game selection, and a WebSocket endpoint that streams snapshots
// and accepts manual control commands.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/engine"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

const shutdownTimeout = 5 * time.Second

// ScoreReader is the slice of the score store the API reads from.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Options configures a Server.
type Options struct {
	Runner *engine.Runner
	Live   *config.Live
	Scores ScoreReader // Optional, can be nil
	Logger *log.Logger
	// Token guards the API and the WebSocket handshake. Empty disables auth.
	Token string
}

// Server serves the control API and the spectator WebSocket.
type Server struct {
	runner   *engine.Runner
	live     *config.Live
	scores   ScoreReader
	logger   *log.Logger
	token    string
	upgrader websocket.Upgrader

	// manualOwner is the WebSocket session that last enabled manual mode.
	mu          sync.Mutex
	manualOwner engine.SessionID
}

// New creates a server around a runner.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: opts.Runner,
		live:   opts.Live,
		scores: opts.Scores,
		logger: logger,
		token:  opts.Token,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler wires routes and returns an http.Handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/ws", s.handleWS)
	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/status", s.handleStatus)
		r.Post("/game", s.handleSelectGame)
		r.Post("/tuning", s.handleTuning)
		r.Post("/background", s.handleBackground)
		r.Post("/save", s.handleSave)
		r.Post("/defaults", s.handleDefaults)
		r.Get("/scores/{game}", s.handleScores)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
		)
	})
}
