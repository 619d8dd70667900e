package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
)

// ReadyFunc reports whether the service's dependencies can take traffic.
type ReadyFunc func(ctx context.Context) error

// Handler wires HTTP routes to the careers service.
type Handler struct {
	svc    *careers.Service
	ready  ReadyFunc
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil ready func always reports ready.
func NewHandler(svc *careers.Service, ready ReadyFunc, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		ready:  ready,
		logger: logger,
	}
}

// Routes registers the career API on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/hall-of-fame", h.HallOfFame)

	r.Route("/careers", func(r chi.Router) {
		r.Post("/", h.CreateCareer)
		r.Get("/", h.ListCareers)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCareer)
			r.Post("/seasons/{half}", h.Simulate)
			r.Get("/offers", h.Offers)
			r.Post("/offers/{offerID}/accept", h.AcceptOffer)
			r.Get("/world", h.World)
			r.Post("/release", h.Release)
			r.Post("/retire", h.Retire)
		})
	})
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if err := h.ready(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unrouted paths with the JSON error body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
