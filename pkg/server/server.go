// Package server serves the interactive periodic table over HTTP.
//
// The server shares one [pipeline.Runner] across requests. Rendered pages and
// images go through the runner's artifact cache, while the JSON element API
// reads the immutable catalog directly.
//
// # Routes
//
//	GET /                        interactive HTML page (?category=&theme=&style=)
//	GET /api/elements            every record (?category=)
//	GET /api/elements/{symbol}   one record with its placement
//	GET /api/categories          categories with colors and counts
//	GET /api/table               classification with positions (?category=)
//	GET /table.svg               standalone SVG (?category=&theme=&style=)
//	GET /table.png               PNG drawn by Graphviz (?category=&theme=)
//	GET /images/elements/{file}  element illustrations
//	GET /healthz                 liveness probe
//	GET /metrics                 Prometheus metrics, when enabled
package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/periodic/pkg/observability"
	"github.com/matzehuels/periodic/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Server is the periodic table HTTP server.
type Server struct {
	runner          *pipeline.Runner
	logger          *log.Logger
	metrics         *observability.Metrics
	addr            string
	imagesDir       string
	shutdownTimeout time.Duration
	defaults        pipeline.Options
	router          chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithImagesDir sets the directory element illustrations are served from.
// Without it every image request is a 404 and the page hides the images.
func WithImagesDir(dir string) Option {
	return func(s *Server) { s.imagesDir = dir }
}

// WithShutdownTimeout bounds how long [Server.Run] waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithMetrics exposes m on /metrics. Registering m as the global hooks is the
// caller's job.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithDefaults sets the style, theme and cell size used when a request does
// not choose them.
func WithDefaults(style, theme string, cellSize float64) Option {
	return func(s *Server) {
		s.defaults.Style = style
		s.defaults.Theme = theme
		s.defaults.CellSize = cellSize
	}
}

// New creates a server around runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:          runner,
		logger:          log.New(io.Discard),
		addr:            DefaultAddr,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(observe)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/table.svg", s.handleTableSVG)
	r.Get("/table.png", s.handleTablePNG)
	r.Get("/images/elements/{file}", s.handleImage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/elements", s.handleElements)
		r.Get("/elements/{symbol}", s.handleElement)
		r.Get("/categories", s.handleCategories)
		r.Get("/table", s.handleTable)
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed"})
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is [Server.Run] on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errc
	s.logger.Info("server stopped")
	return nil
}
