// Package server exposes the section editor over HTTP.
//
// Every browser session owns one editor whose state lives in a
// [session.Store]. A request loads the state, applies at most one mutation
// and writes it back; concurrent requests on the same session are
// last-write-wins.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/render/sink"
	"github.com/matzehuels/daireno/pkg/session"
)

// Route paths.
const (
	RouteIndex    = "/"
	RouteHealth   = "/healthz"
	RouteGenerate = "/api/generate"
	RouteHit      = "/api/hit"
	RouteCommit   = "/api/commit"
	RouteSection  = "/api/section"
	RouteDiagram  = "/api/diagram.{format}"
)

const (
	// SessionCookie carries the session id for browsers.
	SessionCookie = "daireno_session"

	// SessionHeader carries the session id for API clients. It takes
	// precedence over the cookie.
	SessionHeader = "X-Session-ID"

	maxBodyBytes = 1 << 20
)

// Options configures a Server.
type Options struct {
	Store  session.Store
	Logger *log.Logger

	// Defaults seeds new sessions.
	Defaults editor.Setup

	Width       float64
	FloorHeight float64
	Shadow      bool

	SessionTTL time.Duration

	// AllowedOrigins lists origins allowed to call the API cross-origin.
	// Empty means same-origin only.
	AllowedOrigins []string

	PNG []sink.PNGOption
}

// Server is the HTTP front end.
type Server struct {
	opts   Options
	store  session.Store
	logger *log.Logger
}

// New creates a server. A nil Store means an in-memory store; a nil Logger
// discards output.
func New(opts Options) *Server {
	if opts.Store == nil {
		opts.Store = session.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= diagram.LabelColumnWidth {
		opts.Width = diagram.DefaultWidth
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = session.DefaultTTL
	}
	opts.Defaults = opts.Defaults.WithFallback()
	return &Server{opts: opts, store: opts.Store, logger: opts.Logger}
}

// Handler returns the routed handler. Cross-origin requests are refused unless
// AllowedOrigins is set; the wildcard origin never gets credentials, so
// browsers will not send the session cookie cross-origin with it.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get(RouteIndex, s.handleIndex)
	r.Get(RouteHealth, s.handleHealth)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Post(RouteGenerate, s.handleGenerate)
		r.Post(RouteHit, s.handleHit)
		r.Post(RouteCommit, s.handleCommit)
		r.Get(RouteSection, s.handleSection)
		r.Get(RouteDiagram, s.handleDiagram)
	})

	if len(s.opts.AllowedOrigins) == 0 {
		return r
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", SessionHeader},
		ExposedHeaders:   []string{SessionHeader},
		AllowCredentials: !slices.Contains(s.opts.AllowedOrigins, "*"),
	})
	return c.Handler(r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully and closes the session store.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	cleanupDone := make(chan struct{})
	go s.cleanupLoop(ctx, cleanupDone)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	var err error
	select {
	case err = <-errc:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}
	<-cleanupDone
	if cerr := s.store.Close(); cerr != nil {
		s.logger.Warn("close session store", "error", cerr)
	}
	if stderrors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) cleanupLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup", "error", err)
			}
		}
	}
}
