// Package server wires the route handlers, middleware and static assets into
// one HTTP server.
package server

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"covidjournal/internal/covid"
	"covidjournal/internal/httpx"
	"covidjournal/internal/record"
	"covidjournal/internal/view"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Covid    *covid.HTTPHandler
	Records  *record.HTTPHandler
	Renderer view.Renderer
	Static   fs.FS
	DB       Pinger

	CORSAllowedOrigins []string
	MaxBodyBytes       int64
}

// NewRouter returns the full handler tree. Middleware runs before route
// matching so a method-overridden POST reaches the DELETE route.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.CleanPath)
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware(func(w http.ResponseWriter, req *http.Request) {
		d.Renderer.Error(w, req, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(httpx.SecurityHeadersMiddleware)
	r.Use(httpx.CORSMiddleware(d.CORSAllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(d.MaxBodyBytes))
	r.Use(httpx.MethodOverrideMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 500*time.Millisecond)
		defer cancel()
		if d.DB == nil || d.DB.Ping(ctx) != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Get("/", d.Covid.Home)
	r.Get("/getCountryResult", d.Covid.CountryResult)
	r.Get("/allCountries", d.Covid.AllCountries)

	r.Post(record.ListPath, d.Records.Create)
	r.Get(record.ListPath, d.Records.List)
	r.Get("/details/{id}", d.Records.Details)
	r.Delete("/details/{id}", d.Records.Delete)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		d.Renderer.Error(w, req, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NotFound(staticHandler(d.Static, d.Renderer))
	return r
}

// staticHandler serves files from fsys at the site root. Directories and
// missing files get the rendered 404 page.
func staticHandler(fsys fs.FS, renderer view.Renderer) http.HandlerFunc {
	notFound := func(w http.ResponseWriter, r *http.Request) {
		renderer.Error(w, r, http.StatusNotFound, "Page not found")
	}
	if fsys == nil {
		return notFound
	}

	files := http.FileServer(http.FS(fsys))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w, r)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/")
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}

// Server holds the HTTP server.
type Server struct {
	addr string
	srv  *http.Server
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests for up to ten seconds.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msgf("listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
