package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server defaults.
const (
	DefaultAddr           = ":3000"
	DefaultRequestTimeout = 60 * time.Second
	maxRequestBodyBytes   = 1 << 20
)

// DefaultAllowedOrigins are the browser origins allowed to call the API.
func DefaultAllowedOrigins() []string {
	return []string{
		"http://localhost:3000",
		"https://vishu241.github.io",
		"https://ad-generator-kzt1.onrender.com",
	}
}

// Server exposes an adgen.Augmenter over HTTP.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server

	augmenter      adgen.Augmenter
	model          string
	addr           string
	allowedOrigins []string
	requestTimeout time.Duration
	logger         *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithModel sets the model name reported by the health endpoint.
func WithModel(model string) ServerOption {
	return func(s *Server) {
		s.model = model
	}
}

// WithAllowedOrigins replaces the CORS origin allow-list.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithRequestTimeout bounds how long a single request may run, AI retries
// included.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithLogger sets the logger used for request and error logs.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server routing API calls to augmenter.
func NewServer(augmenter adgen.Augmenter, opts ...ServerOption) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		augmenter:      augmenter,
		addr:           DefaultAddr,
		allowedOrigins: DefaultAllowedOrigins(),
		requestTimeout: DefaultRequestTimeout,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(requestID)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.requestTimeout))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "ETag"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/process", s.handleProcess)
		r.Post("/preview", s.handlePreview)
		r.Get("/preview", s.handlePreviewPage)
		r.Post("/summarize", s.handleSummarize)
	})

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// ServeHTTP lets the Server be used directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("listening", "addr", ln.Addr().String(), "model", s.model)
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
