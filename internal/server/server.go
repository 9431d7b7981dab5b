// Package server serves the landing page over HTTP.
//
// Every request to "/" opens its own page session, applies the selection
// carried by the "logo" query parameter, and renders. Sessions are never
// shared between requests, so no locking is needed below this layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/mad-scientist-star/barones-site/internal/assets"
	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/logging"
)

// ErrListen indicates the server could not bind its address.
var ErrListen = errors.New("cannot listen")

// SelectionParam is the query parameter carrying the chosen logo id.
const SelectionParam = "logo"

// Default timeouts, used when the matching Config field is zero.
const (
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Session is one page load: a selection plus a renderable page.
type Session interface {
	templ.Component
	Select(id int) error
	Close()
}

// Source opens page sessions and reads the logo files they reference.
type Source interface {
	NewSession(ctx context.Context) (Session, error)
	LoadLogo(file string) ([]byte, error)
}

// Config holds listener settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves the page, its logos, and a health check.
type Server struct {
	cfg    Config
	source Source
	logger *zerolog.Logger
}

// New creates a Server. A nil logger disables logging.
func New(cfg Config, source Source, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Server{cfg: cfg, source: source, logger: logger}
}

// Handler returns the routed handler wrapped in recovery and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /logos/{file}", s.handleLogo)
	mux.HandleFunc("GET /healthz", handleHealth)

	return Chain(RequestLogger(s.logger), Recovery(s.logger))(mux)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrListen, s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("serving")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	sess, err := s.source.NewSession(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("opening page session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer sess.Close()

	if raw := r.URL.Query().Get(SelectionParam); raw != "" {
		if err := applySelection(sess, raw); err != nil {
			// The page still renders with the prior selection.
			logger.Debug().Err(err).Str(SelectionParam, raw).Msg("selection ignored")
		}
	}

	templ.Handler(sess, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			logging.FromContext(r.Context()).Error().Err(err).Msg("rendering page")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

// applySelection parses raw as a logo id and selects it.
func applySelection(sess Session, raw string) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", brand.ErrInvalidSelection, raw)
	}
	return sess.Select(id)
}

func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")

	data, err := s.source.LoadLogo(file)
	switch {
	case errors.Is(err, assets.ErrLogoNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		http.NotFound(w, r)
		return
	case err != nil:
		logging.FromContext(r.Context()).Error().Err(err).Str("file", file).Msg("loading logo")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", assets.LogoContentType(file))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(data)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}
