// Package api is the program guide gateway: an HTTP front for the v1 and
// v3 guides that keeps the API key server-side, plus code table lookup
// and search.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/listenupapp/programguide/internal/codesearch"
	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/internal/http/response"
	"github.com/listenupapp/programguide/internal/ratelimit"
)

// Guide is the v1 program guide.
type Guide interface {
	ListPrograms(ctx context.Context, area, service string, date time.Time) (any, error)
	ListByGenre(ctx context.Context, area, service, genre string, date time.Time) (any, error)
	ProgramInfo(ctx context.Context, area, service, programID string) (any, error)
	NowPlaying(ctx context.Context, area, service string) (any, error)
}

// RadioGuide is the v3 radio guide.
type RadioGuide interface {
	DateRadio(ctx context.Context, area, service string, date time.Time) (any, error)
	GenreRadio(ctx context.Context, area, service, genre string, date time.Time) (any, error)
	NowRadio(ctx context.Context, area, service string) (any, error)
	BroadcastEventRadio(ctx context.Context, broadcastEventID string) (any, error)
	BroadcastEventRadioByProgram(ctx context.Context, area, service, programID string) (any, error)
}

// CodeSearcher finds code table entries by free text.
type CodeSearcher interface {
	Search(ctx context.Context, p codesearch.Params) ([]codesearch.Hit, error)
}

// Options tunes the gateway's HTTP surface.
type Options struct {
	AllowedOrigins []string
	// RequestsPerSecond per client IP. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// Server routes gateway requests.
type Server struct {
	guide   Guide
	radio   RadioGuide
	search  CodeSearcher
	router  *chi.Mux
	api     huma.API
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	now     func() time.Time
}

// NewServer creates a gateway with all routes configured. Close releases
// the per-IP limiter.
func NewServer(guide Guide, radio RadioGuide, search CodeSearcher, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		guide:  guide,
		radio:  radio,
		search: search,
		router: chi.NewRouter(),
		logger: logger,
		now:    time.Now,
	}
	if opts.RequestsPerSecond > 0 {
		s.limiter = ratelimit.New(opts.RequestsPerSecond, max(opts.Burst, 1))
	}

	s.setupMiddleware(opts)

	RegisterErrorHandler()
	config := huma.DefaultConfig("NHK Program Guide Gateway", "1.0.0")
	config.Info.Description = "Program guide lookups by area, service, genre and date. " +
		"Area, service and genre accept a code, a display name or an alias."
	s.api = humachi.New(s.router, config)

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(requestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.HandleError(w, domainerrors.NotFoundf("no route for %s", r.URL.Path), s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path, s.logger)
	})

	s.registerGuideRoutes()
	s.registerRadioRoutes()
	s.registerCodeRoutes()
}

// requestLogger logs one debug line per request through slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("gateway request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
