package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/http/requestutil"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
)

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	svc    *careers.Service
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(svc *careers.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		token:  token,
		logger: logger,
	}
}

// Routes registers the admin API on r.
func (h *AdminHandler) Routes(r chi.Router) {
	r.Delete("/admin/careers/{id}", h.DeleteCareer)
}

// DeleteCareer removes a career from the live store. Save files are left on disk.
func (h *AdminHandler) DeleteCareer(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "admin deleted career", logging.FieldCareerID, id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
