// Package server serves the token sale form over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-tokensale/internal/config"
	"github.com/goliatone/go-tokensale/pkg/controller"
	"github.com/goliatone/go-tokensale/pkg/model"
	"github.com/goliatone/go-tokensale/pkg/render"
	"github.com/goliatone/go-tokensale/pkg/validation"
)

type Option func(*Server)

// WithForm replaces the default token sale form.
func WithForm(form model.FormModel) Option {
	return func(s *Server) {
		s.form = form
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAssets serves files under /assets/.
func WithAssets(assets fs.FS) Option {
	return func(s *Server) {
		s.assets = assets
	}
}

// WithPage overrides the page header copy.
func WithPage(page render.PageOptions) Option {
	return func(s *Server) {
		s.page = page
	}
}

// WithToast overrides the success toast.
func WithToast(toast controller.Toast) Option {
	return func(s *Server) {
		s.toast = toast
	}
}

// WithValidator sets the full-form validator shared by every request.
func WithValidator(v *validation.Validator) Option {
	return func(s *Server) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithSink receives accepted configurations. Defaults to a controller.LogSink
// on the server logger.
func WithSink(sink controller.Sink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// Server holds the immutable state shared by concurrent requests. Each
// request drives its own controller.
type Server struct {
	cfg       config.ServerConfig
	form      model.FormModel
	renderer  render.Renderer
	assets    fs.FS
	page      render.PageOptions
	toast     controller.Toast
	validator *validation.Validator
	sink      controller.Sink
	logger    *zap.Logger
}

// New builds a Server rendering pages with renderer.
func New(cfg config.ServerConfig, renderer render.Renderer, options ...Option) (*Server, error) {
	if renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	s := &Server{
		cfg:       cfg,
		form:      model.SaleForm(),
		renderer:  renderer,
		toast:     controller.DefaultToast(),
		validator: validation.New(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.sink == nil {
		s.sink = controller.NewLogSink(s.logger)
	}
	return s, nil
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("POST /fields/{name}/validate", s.handleValidateField)
	if s.assets != nil {
		mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(s.assets)))
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return logRequests(s.logger, mux)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("listening", zap.String("address", ln.Addr().String()))

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
