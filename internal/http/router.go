// Package http assembles the career API router.
package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/football-career-sim/internal/http/handlers"
	"github.com/preston-bernstein/football-career-sim/internal/http/middleware"
)

// RouterConfig collects what NewRouter needs. Admin may be nil.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Recorder    middleware.Recorder
	CORSOrigins []string
	Timeout     time.Duration
}

// NewRouter registers HTTP routes and the middleware stack on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimiddleware.Recoverer)
	if cfg.Timeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Timeout))
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID", "Location"},
			MaxAge:         300,
		}))
	}

	r.NotFound(cfg.Handler.NotFound)
	r.MethodNotAllowed(cfg.Handler.MethodNotAllowed)

	cfg.Handler.Routes(r)
	if cfg.Admin != nil {
		cfg.Admin.Routes(r)
	}
	return r
}
